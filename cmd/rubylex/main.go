// Command rubylex tokenizes Ruby source files and dumps the stream.
//
// Usage: rubylex [--json] [-v] [--trace] FILE ...
//
// Each token is printed as LINE:COL KIND LEXEME, one per line. With
// --json the stream is emitted as a JSON array. The exit code is 1
// when any file produces INVALID tokens or error diagnostics.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pborman/getopt"

	"github.com/rubytools/rubylex"
	"github.com/rubytools/rubylex/token"
)

// jsonToken is the JSON shape of one token.
type jsonToken struct {
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

func main() {
	os.Exit(run())
}

func run() int {
	help := getopt.BoolLong("help", 'h', "display help")
	jsonOut := getopt.BoolLong("json", 'j', "emit tokens as JSON")
	verbose := getopt.BoolLong("verbose", 'v', "enable debug logging")
	trace := getopt.BoolLong("trace", 0, "enable trace logging (implies --verbose)")
	getopt.SetParameters("FILE ...")
	getopt.Parse()

	if *help {
		getopt.PrintUsage(os.Stdout)
		return 0
	}

	files := getopt.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "rubylex: no input files")
		getopt.PrintUsage(os.Stderr)
		return 1
	}

	var logger *slog.Logger
	switch {
	case *trace:
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: rubylex.LevelTrace,
		}))
	case *verbose:
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	exit := 0
	for _, path := range files {
		f, err := rubylex.TokenizeFile(path, rubylex.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "rubylex: %v\n", err)
			exit = 1
			continue
		}
		if err := dump(f, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "rubylex: %v\n", err)
			return 1
		}
		for _, d := range f.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s (%s)\n",
				path, d.Line, d.Column, d.Severity, d.Message, d.Code)
		}
		if f.HasErrors() {
			exit = 1
		}
	}
	return exit
}

func dump(f *rubylex.File, asJSON bool) error {
	if asJSON {
		out := make([]jsonToken, 0, len(f.Tokens))
		for _, t := range f.Tokens {
			line, col := f.Position(t.Span.Start)
			out = append(out, jsonToken{
				Kind:   t.Kind.String(),
				Start:  int(t.Span.Start),
				End:    int(t.Span.End),
				Line:   line,
				Column: col,
				Text:   t.Text(f.Source),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, t := range f.Tokens {
		if t.Kind == token.EOF {
			break
		}
		line, col := f.Position(t.Span.Start)
		fmt.Printf("%d:%d\t%s\t%q\n", line, col, t.Kind, t.Text(f.Source))
	}
	return nil
}
