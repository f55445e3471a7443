package lexer

import (
	"fmt"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// Kind classifies a token. The set is closed: ordinary kinds, the four error
// kinds mirroring errors.ErrorKind, and EOF.
type Kind int

const (
	EOF Kind = iota
	Keyword
	Identifier
	Number
	String
	Operator
	Punctuation
	ErrUnterminatedString
	ErrInvalidNumber
	ErrInvalidSymbol
	ErrInvalidIdentifier
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Keyword:
		return "KEYWORD"
	case Identifier:
		return "IDENTIFIER"
	case Number:
		return "NUMBER"
	case String:
		return "STRING"
	case Operator:
		return "OPERATOR"
	case Punctuation:
		return "PUNCTUATION"
	case ErrUnterminatedString:
		return "UNTERMINATED_STRING"
	case ErrInvalidNumber:
		return "INVALID_NUMBER"
	case ErrInvalidSymbol:
		return "INVALID_SYMBOL"
	case ErrInvalidIdentifier:
		return "INVALID_IDENTIFIER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText renders the kind name in JSON/text output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsError reports whether k is one of the four lexical error kinds.
func (k Kind) IsError() bool {
	switch k {
	case ErrUnterminatedString, ErrInvalidNumber, ErrInvalidSymbol, ErrInvalidIdentifier:
		return true
	}
	return false
}

// errorKind maps an error token kind to its errors.ErrorKind. Only valid for
// kinds where IsError() is true.
func (k Kind) errorKind() errors.ErrorKind {
	switch k {
	case ErrUnterminatedString:
		return errors.UnterminatedString
	case ErrInvalidNumber:
		return errors.InvalidNumber
	case ErrInvalidIdentifier:
		return errors.InvalidIdentifier
	default:
		return errors.InvalidSymbol
	}
}

// errorTokenKind is the inverse mapping, used when the recovery engine turns a
// record kind into a token kind.
func errorTokenKind(k errors.ErrorKind) Kind {
	switch k {
	case errors.UnterminatedString:
		return ErrUnterminatedString
	case errors.InvalidNumber:
		return ErrInvalidNumber
	case errors.InvalidIdentifier:
		return ErrInvalidIdentifier
	default:
		return ErrInvalidSymbol
	}
}

// Token represents one lexical token. Lexeme is the exact source substring;
// it is empty only for EOF.
type Token struct {
	Kind     Kind   `json:"kind"`
	Lexeme   string `json:"lexeme"`
	Line     int    `json:"line"`     // 1-based line of the first lexeme character
	Column   int    `json:"column"`   // 1-based column of the first lexeme character
	StartPos int    `json:"startPos"` // 0-based byte offset of the lexeme start
	EndPos   int    `json:"endPos"`   // 0-based byte offset just past the lexeme
}

// IsError reports whether the token carries one of the four error kinds.
func (t Token) IsError() bool { return t.Kind.IsError() }

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at line %d, col %d", t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) at line %d, col %d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// keywords is the fixed IBTAC keyword set. A name run must match one of these
// exactly, with no identifier prefix, to lex as a keyword.
var keywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"while":  {},
	"return": {},
	"func":   {},
}

// IsKeyword reports whether word is one of the five IBTAC keywords.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// IdentifierPrefixes lists the three required identifier prefixes, in the
// order used when proposing corrections.
var IdentifierPrefixes = [...]string{"071", "070", "048"}

// twoCharOperators take precedence over their one-character prefixes
// (maximal munch).
var twoCharOperators = map[string]struct{}{
	"==": {},
	"!=": {},
	"<=": {},
	">=": {},
}

func isOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '<', '>', '=':
		return true
	}
	return false
}

func isPunctuation(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', ';', ',':
		return true
	}
	return false
}

// isSyncChar reports membership in the panic-mode synchronization set.
func isSyncChar(ch byte) bool {
	switch ch {
	case ';', '}', '\n', ')', '$':
		return true
	}
	return false
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isNameChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
