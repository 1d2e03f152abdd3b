package lexer

import (
	"fmt"

	"github.com/rubytools/rubylex/token"
)

// Severity represents how critical a diagnostic is.
type Severity int

const (
	// SeverityError is a lexical error (malformed or unterminated input).
	SeverityError Severity = iota
	// SeverityWarning is a non-fatal observation.
	SeverityWarning
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is an issue found while lexing. Spans are byte ranges;
// the host converts them to line/column positions.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g., "unterminated-string", "invalid-token"
	Span     token.Span
	Message  string
}

// String formats the diagnostic for human consumption.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s) at %d..%d",
		d.Severity, d.Message, d.Code, d.Span.Start, d.Span.End)
}
