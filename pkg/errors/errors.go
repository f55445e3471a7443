package errors

import (
	"fmt"
	"io"
	"strings"
)

// ErrorKind identifies one of the four lexical error categories. The set is
// closed; switches over it should handle every constant.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	InvalidNumber
	InvalidSymbol
	InvalidIdentifier
)

// allKinds fixes the display order used by Summary.
var allKinds = [...]ErrorKind{
	UnterminatedString,
	InvalidNumber,
	InvalidSymbol,
	InvalidIdentifier,
}

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UNTERMINATED_STRING"
	case InvalidNumber:
		return "INVALID_NUMBER"
	case InvalidSymbol:
		return "INVALID_SYMBOL"
	case InvalidIdentifier:
		return "INVALID_IDENTIFIER"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText renders the kind name in JSON/text output.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LexicalError is the record emitted for every malformed span. It travels
// alongside the matching error token in a ScanResult and never aborts a scan.
type LexicalError struct {
	Position
	ErrKind    ErrorKind
	Msg        string // Human-readable description, without position info
	Lexeme     string // The offending source substring
	Suggestion string // Corrective hint, may be empty
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *LexicalError) Pos() Position   { return e.Position }
func (e *LexicalError) Kind() ErrorKind { return e.ErrKind }
func (e *LexicalError) Message() string { return e.Msg }

// SummaryEntry is one rendered row of the grouped error view.
type SummaryEntry struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	Line       int       `json:"line"`
	Column     int       `json:"column"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Summary is a derived, read-only view over a scan's errors, grouped by kind.
// Within a group, entries keep source order.
type Summary struct {
	Total  int
	Groups []SummaryGroup
}

// SummaryGroup collects all errors of one kind.
type SummaryGroup struct {
	Kind    ErrorKind
	Entries []SummaryEntry
}

// Summarize builds the grouped view. Kinds with no errors are omitted; group
// order is fixed so repeated calls over the same input render identically.
func Summarize(errs []*LexicalError) Summary {
	byKind := make(map[ErrorKind][]SummaryEntry)
	for _, e := range errs {
		byKind[e.ErrKind] = append(byKind[e.ErrKind], SummaryEntry{
			Kind:       e.ErrKind,
			Message:    e.Msg,
			Line:       e.Line,
			Column:     e.Column,
			Suggestion: e.Suggestion,
		})
	}

	s := Summary{Total: len(errs)}
	for _, kind := range allKinds {
		if entries, ok := byKind[kind]; ok {
			s.Groups = append(s.Groups, SummaryGroup{Kind: kind, Entries: entries})
		}
	}
	return s
}

// Render writes the summary in a display-ready form.
func (s Summary) Render(w io.Writer) {
	if s.Total == 0 {
		fmt.Fprintln(w, "No lexical errors found.")
		return
	}
	fmt.Fprintf(w, "Found %d lexical error(s):\n", s.Total)
	for _, g := range s.Groups {
		fmt.Fprintf(w, "%s (%d):\n", g.Kind, len(g.Entries))
		for _, e := range g.Entries {
			fmt.Fprintf(w, "  line %d, col %d: %s\n", e.Line, e.Column, e.Message)
			if e.Suggestion != "" {
				fmt.Fprintf(w, "    hint: %s\n", e.Suggestion)
			}
		}
	}
}

// DisplayErrors prints errors in a user-friendly format, including the source
// line and a position marker.
func DisplayErrors(w io.Writer, src string, errs []*LexicalError) {
	if len(errs) == 0 {
		return
	}

	lines := strings.Split(src, "\n")

	for _, err := range errs {
		// Ensure line numbers are within bounds (1-based index)
		lineIdx := err.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			fmt.Fprintf(w, "%s: %s\n", err.ErrKind, err.Msg)
			continue
		}

		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")

		fmt.Fprintf(w, "%s at %d:%d: %s\n", err.ErrKind, err.Line, err.Column, err.Msg)
		fmt.Fprintf(w, "  %s\n", sourceLine)

		marker := strings.Repeat(" ", err.Column-1) + "^"
		if span := err.EndPos - err.StartPos; span > 1 && err.Column-1+span <= len(sourceLine)+1 {
			marker += strings.Repeat("~", span-1)
		}
		fmt.Fprintf(w, "  %s\n", marker)

		if err.Suggestion != "" {
			fmt.Fprintf(w, "  hint: %s\n", err.Suggestion)
		}
		fmt.Fprintln(w)
	}
}
