package harness

import (
	"fmt"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
)

// DefaultCases covers the scanner's contract edges: identifier prefix rules,
// the keyword/identifier split, numeric literal forms, string termination,
// operator adjacency, and comment nesting.
func DefaultCases() []Case {
	return []Case{
		{
			Name:  "leading underscore in identifier",
			Input: "_071test 071_valid _invalid 070_valid 048_valid",
			Check: func(r *lexer.ScanResult) error {
				if err := wantCounts(r, 3, lexer.Identifier); err != nil {
					return err
				}
				return wantErrors(r, errors.InvalidIdentifier, errors.InvalidIdentifier)
			},
		},
		{
			Name:  "func as keyword and as identifier suffix",
			Input: "func 071func 070func 048func",
			Check: func(r *lexer.ScanResult) error {
				if err := wantClean(r); err != nil {
					return err
				}
				if err := wantCounts(r, 1, lexer.Keyword); err != nil {
					return err
				}
				return wantCounts(r, 3, lexer.Identifier)
			},
		},
		{
			Name:  "leading-dot number literal",
			Input: ".5",
			Check: func(r *lexer.ScanResult) error {
				if err := wantClean(r); err != nil {
					return err
				}
				return wantLexemes(r, lexer.Number, ".5")
			},
		},
		{
			Name:  "multi-line string is unterminated",
			Input: "$multi\nline$",
			Check: func(r *lexer.ScanResult) error {
				if len(r.Errors) == 0 {
					return fmt.Errorf("expected errors, scan was clean")
				}
				first := r.Errors[0]
				if first.ErrKind != errors.UnterminatedString || first.Line != 1 {
					return fmt.Errorf("expected UNTERMINATED_STRING on line 1, got %s on line %d",
						first.ErrKind, first.Line)
				}
				return nil
			},
		},
		{
			Name:  "adjacent angle brackets stay separate",
			Input: "< > <> <= >=",
			Check: func(r *lexer.ScanResult) error {
				if err := wantClean(r); err != nil {
					return err
				}
				return wantLexemes(r, lexer.Operator, "<", ">", "<", ">", "<=", ">=")
			},
		},
		{
			Name:  "nested block comment",
			Input: "/* outer /* inner */ */",
			Check: func(r *lexer.ScanResult) error {
				return wantErrors(r, errors.InvalidSymbol)
			},
		},
		{
			Name:  "prefixed name and numeric id",
			Input: "071bayzid 0712025 070shoaib 048student",
			Check: func(r *lexer.ScanResult) error {
				if err := wantClean(r); err != nil {
					return err
				}
				return wantLexemes(r, lexer.Identifier, "071bayzid", "0712025", "070shoaib", "048student")
			},
		},
	}
}

func wantClean(r *lexer.ScanResult) error {
	if r.HasErrors() {
		return fmt.Errorf("expected no errors, got %d (first: %s)", len(r.Errors), r.Errors[0].Msg)
	}
	return nil
}

func wantCounts(r *lexer.ScanResult, want int, kind lexer.Kind) error {
	got := 0
	for _, t := range r.Tokens {
		if t.Kind == kind {
			got++
		}
	}
	if got != want {
		return fmt.Errorf("expected %d %s tokens, got %d", want, kind, got)
	}
	return nil
}

func wantLexemes(r *lexer.ScanResult, kind lexer.Kind, lexemes ...string) error {
	var got []string
	for _, t := range r.Tokens {
		if t.Kind == kind {
			got = append(got, t.Lexeme)
		}
	}
	if len(got) != len(lexemes) {
		return fmt.Errorf("expected %d %s tokens, got %d (%v)", len(lexemes), kind, len(got), got)
	}
	for i, want := range lexemes {
		if got[i] != want {
			return fmt.Errorf("%s token %d: expected %q, got %q", kind, i, want, got[i])
		}
	}
	return nil
}

func wantErrors(r *lexer.ScanResult, kinds ...errors.ErrorKind) error {
	if len(r.Errors) != len(kinds) {
		return fmt.Errorf("expected %d errors, got %d", len(kinds), len(r.Errors))
	}
	for i, want := range kinds {
		if r.Errors[i].ErrKind != want {
			return fmt.Errorf("error %d: expected %s, got %s", i, want, r.Errors[i].ErrKind)
		}
	}
	return nil
}
