// Package driver is the consumer-facing orchestration layer. It loads source
// text, runs the scanner exactly once per input, and renders the two output
// sequences. It performs no scanning logic of its own and never mutates a
// ScanResult.
package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/source"
)

// ScanString scans an inline snippet.
func ScanString(code string) *lexer.ScanResult {
	return lexer.Scan(source.NewEvalSource(code))
}

// ScanFile reads filename from disk and scans it.
func ScanFile(filename string) (*lexer.ScanResult, error) {
	src, err := source.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return lexer.Scan(src), nil
}

// WriteTokenTable renders the token stream as an aligned table.
func WriteTokenTable(w io.Writer, result *lexer.ScanResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tLEXEME\tLINE\tCOL")
	for i, tok := range result.Tokens {
		lexeme := tok.Lexeme
		if tok.Kind == lexer.EOF {
			lexeme = "<eof>"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", i+1, tok.Kind, lexeme, tok.Line, tok.Column)
	}
	tw.Flush()
}

// WriteErrorReport renders the caret-annotated error listing followed by the
// grouped summary.
func WriteErrorReport(w io.Writer, result *lexer.ScanResult) {
	errors.DisplayErrors(w, result.Source.Content, result.Errors)
	result.Summary().Render(w)
}

// DisplayResult prints the token table and, when errors exist, the error
// report. Returns true when the scan was clean; whether a dirty scan is fatal
// is the caller's call.
func DisplayResult(w io.Writer, result *lexer.ScanResult) bool {
	fmt.Fprintf(w, "=== TOKENS (%s) ===\n", result.Source.DisplayPath())
	WriteTokenTable(w, result)
	if result.HasErrors() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "=== ERRORS ===")
		WriteErrorReport(w, result)
		return false
	}
	return true
}

// jsonResult fixes the field layout of WriteJSON output.
type jsonResult struct {
	Source string                `json:"source"`
	Tokens []lexer.Token         `json:"tokens"`
	Errors []errors.SummaryEntry `json:"errors"`
}

// WriteJSON renders the scan result as JSON for tooling consumers.
func WriteJSON(w io.Writer, result *lexer.ScanResult) error {
	out := jsonResult{
		Source: result.Source.DisplayPath(),
		Tokens: result.Tokens,
		Errors: make([]errors.SummaryEntry, 0, len(result.Errors)),
	}
	for _, e := range result.Errors {
		out.Errors = append(out.Errors, errors.SummaryEntry{
			Kind:       e.ErrKind,
			Message:    e.Msg,
			Line:       e.Line,
			Column:     e.Column,
			Suggestion: e.Suggestion,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
