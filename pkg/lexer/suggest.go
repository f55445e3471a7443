package lexer

import (
	"fmt"
	"strings"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// Suggest maps an error kind and the offending lexeme to a short corrective
// hint. It is a pure function with no scanner state: the recovery engine
// calls it once per record, and it only ever populates the Suggestion field.
func Suggest(kind errors.ErrorKind, lexeme string) string {
	switch kind {
	case errors.UnterminatedString:
		return fmt.Sprintf("add a closing '$' to complete the string: %s$", lexeme)

	case errors.InvalidNumber:
		return suggestNumber(lexeme)

	case errors.InvalidIdentifier:
		return fmt.Sprintf("rename to %q: identifiers must start with %s",
			nearestPrefix(lexeme)+lexeme, strings.Join(IdentifierPrefixes[:], ", "))

	case errors.InvalidSymbol:
		return suggestSymbol(lexeme)
	}
	return ""
}

func suggestNumber(lexeme string) string {
	switch {
	case strings.Count(lexeme, ".") > 1:
		return "remove the extra decimal point"
	case exponentTail(lexeme):
		return "add digits after the exponent marker, e.g. 2.5e10"
	case strings.HasSuffix(lexeme, "."):
		return "add digits after the decimal point"
	default:
		return "use digits with at most one decimal point and an optional exponent"
	}
}

// exponentTail reports whether the lexeme ends in a bare exponent marker,
// optionally with a sign ("1e", "1E", "1e+", "3.2e-").
func exponentTail(lexeme string) bool {
	trimmed := strings.TrimRight(lexeme, "+-")
	return strings.HasSuffix(trimmed, "e") || strings.HasSuffix(trimmed, "E")
}

func suggestSymbol(lexeme string) string {
	switch lexeme {
	case "!":
		return "'!' is only valid as part of '!='"
	case ".":
		return "'.' is only valid inside a numeric literal"
	case "/*":
		return "close the outer comment with '*/' before opening another"
	default:
		return fmt.Sprintf("remove the invalid symbol %q", lexeme)
	}
}

// nearestPrefix picks the identifier prefix to propose for an invalid name
// run. When the run already contains one of the valid prefixes (a common slip
// like "_071temp"), that prefix is proposed; otherwise the first prefix of
// the fixed set is.
func nearestPrefix(lexeme string) string {
	for _, p := range IdentifierPrefixes {
		if strings.Contains(lexeme, p) {
			return p
		}
	}
	return IdentifierPrefixes[0]
}
