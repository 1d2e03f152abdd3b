// Package rubylex tokenizes Ruby source text.
//
// Call [Tokenize] with a source buffer, or [TokenizeFile] with a path,
// to run the mode-stacked lexer and get back a [File] containing the
// flat token stream and any diagnostics with line/column positions.
// [Search] and [TokenizeScript] locate scripts by name across a list
// of [Source] values, load-path style.
package rubylex

import (
	"log/slog"
	"os"

	"github.com/juju/errors"

	"github.com/rubytools/rubylex/internal/types"
	"github.com/rubytools/rubylex/lexer"
	"github.com/rubytools/rubylex/token"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-token iteration logging.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures tokenization.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	recovery    lexer.Recovery
	hasRecovery bool
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithRecovery sets the unterminated-literal recovery table.
// If not set, unterminated literals terminate the stream with EOF.
func WithRecovery(r lexer.Recovery) Option {
	return func(c *config) {
		c.recovery = r
		c.hasRecovery = true
	}
}

// File is the result of tokenizing one source buffer.
type File struct {
	// Path is the source path, empty for in-memory buffers.
	Path string
	// Source is the raw bytes the spans index into.
	Source []byte
	// Tokens is the full stream, ending with the EOF token.
	Tokens []token.Token
	// Diagnostics are lexical issues with line/column positions.
	Diagnostics []Diagnostic

	lines *LineMap
}

// Diagnostic is a lexical issue located by line and column.
type Diagnostic struct {
	Severity lexer.Severity
	Code     string
	Message  string
	Line     int // 1-based
	Column   int // 1-based
}

// Tokenize runs the lexer over source and returns the token stream.
//
// Example:
//
//	f := rubylex.Tokenize([]byte(`puts "hi #{name}"`))
//	for _, t := range f.Tokens {
//	    fmt.Println(t.Kind, t.Text(f.Source))
//	}
func Tokenize(source []byte, opts ...Option) *File {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var lexOpts []lexer.Option
	if cfg.hasRecovery {
		lexOpts = append(lexOpts, lexer.WithRecovery(cfg.recovery))
	}
	lx := lexer.New(source, componentLogger(cfg.logger, "lexer"), lexOpts...)
	tokens, diags := lx.Tokenize()

	f := &File{
		Source: source,
		Tokens: tokens,
		lines:  NewLineMap(source),
	}
	for _, d := range diags {
		line, col := f.lines.Position(d.Span.Start)
		f.Diagnostics = append(f.Diagnostics, Diagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Line:     line,
			Column:   col,
		})
	}
	return f
}

// TokenizeFile reads path and tokenizes its contents.
func TokenizeFile(path string, opts ...Option) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	f := Tokenize(content, opts...)
	f.Path = path
	return f, nil
}

// TokenizeScript searches sources for a script by name and tokenizes
// the first match.
func TokenizeScript(sources []Source, name string, opts ...Option) (*File, error) {
	content, path, err := findScriptContent(sources, name)
	if err != nil {
		return nil, errors.Annotatef(err, "locating %s", name)
	}
	f := Tokenize(content, opts...)
	f.Path = path
	return f, nil
}

// Position converts a byte offset into 1-based line and column.
func (f *File) Position(off token.ByteOffset) (line, col int) {
	return f.lines.Position(off)
}

// HasErrors reports whether the stream contains INVALID tokens or
// error diagnostics.
func (f *File) HasErrors() bool {
	for _, d := range f.Diagnostics {
		if d.Severity == lexer.SeverityError {
			return true
		}
	}
	for _, t := range f.Tokens {
		if t.Kind == token.Invalid {
			return true
		}
	}
	return false
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("component", component))
}
