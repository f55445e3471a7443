package lexer

import (
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/source"
)

// Lexer holds the state of one scan over an immutable source text. A Lexer is
// single-use: create it, drain NextToken until EOF (or call Scan, which does
// that), and read the collected errors.
type Lexer struct {
	src          *source.SourceFile
	input        string
	position     int  // byte offset of the current char
	readPosition int  // byte offset after the current char
	ch           byte // current char under examination, 0 at end of input
	line         int  // current 1-based line number
	column       int  // current 1-based column number

	state recoveryState
	errs  []*errors.LexicalError
}

// NewLexer creates a lexer positioned at the first character of src.
func NewLexer(src *source.SourceFile) *Lexer {
	l := &Lexer{src: src, input: src.Content, line: 1, column: 0}
	l.readChar()
	return l
}

// Errors returns the records collected so far, in source order.
func (l *Lexer) Errors() []*errors.LexicalError { return l.errs }

// readChar consumes one character, updating line and column. It is the only
// mutator of the cursor position.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar looks at the next character without consuming anything.
func (l *Lexer) peekChar() byte {
	return l.peekCharAt(1)
}

// peekCharAt looks offset characters past the current one; 0 at end of input.
func (l *Lexer) peekCharAt(offset int) byte {
	pos := l.position + offset
	if pos >= len(l.input) {
		return 0
	}
	return l.input[pos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token. Every call consumes at
// least one character (unless already at end of input) and error tokens are
// paired with exactly one record in Errors.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			if tok, bad := l.skipBlockComment(); bad {
				return tok
			}
			continue
		}
		break
	}

	startLine := l.line
	startCol := l.column
	startPos := l.position

	switch {
	case l.ch == 0:
		return Token{Kind: EOF, Lexeme: "", Line: startLine, Column: startCol, StartPos: startPos, EndPos: startPos}

	case l.ch == '$':
		return l.scanString(startLine, startCol, startPos)

	case l.atIdentifierPrefix():
		return l.scanIdentifier(startLine, startCol, startPos)

	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		return l.scanNumber(startLine, startCol, startPos)

	case isLetter(l.ch) || l.ch == '_':
		return l.scanName(startLine, startCol, startPos)

	default:
		return l.scanOperator(startLine, startCol, startPos)
	}
}

// skipLineComment consumes a // comment up to, but not including, the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment consumes a /* ... */ comment. Nested comments are
// unsupported: a second /* before the close aborts the construct with an
// INVALID_SYMBOL error token at the inner marker, followed by panic-mode
// recovery. An unterminated comment is skipped silently to end of input.
func (l *Lexer) skipBlockComment() (Token, bool) {
	l.readChar() // consume '/'
	l.readChar() // consume '*'

	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return Token{}, false
		}
		if l.ch == '/' && l.peekChar() == '*' {
			innerLine := l.line
			innerCol := l.column
			innerPos := l.position
			l.readChar()
			l.readChar()
			tok := l.emitError(errors.InvalidSymbol,
				"nested multi-line comments are not supported",
				innerLine, innerCol, innerPos, l.position)
			l.panicRecover()
			return tok, true
		}
		l.readChar()
	}
	return Token{}, false
}

// atIdentifierPrefix reports whether the cursor sits at the start of one of
// the required identifier prefixes (071, 070, 048). These begin with a digit,
// so the check must run before number dispatch.
func (l *Lexer) atIdentifierPrefix() bool {
	if l.ch != '0' {
		return false
	}
	switch l.peekChar() {
	case '7':
		third := l.peekCharAt(2)
		return third == '0' || third == '1'
	case '4':
		return l.peekCharAt(2) == '8'
	}
	return false
}

// emitError records one LexicalError and returns the matching error token.
// The token lexeme is the exact source span, keeping the round-trip law.
func (l *Lexer) emitError(kind errors.ErrorKind, msg string, line, col, startPos, endPos int) Token {
	lexeme := l.input[startPos:endPos]
	rec := &errors.LexicalError{
		Position: errors.Position{
			Line:     line,
			Column:   col,
			StartPos: startPos,
			EndPos:   endPos,
			Source:   l.src,
		},
		ErrKind:    kind,
		Msg:        msg,
		Lexeme:     lexeme,
		Suggestion: Suggest(kind, lexeme),
	}
	l.errs = append(l.errs, rec)
	return Token{
		Kind:     errorTokenKind(kind),
		Lexeme:   lexeme,
		Line:     line,
		Column:   col,
		StartPos: startPos,
		EndPos:   endPos,
	}
}

// ScanResult is the complete, immutable outcome of one scan: the token stream
// (always terminated by an EOF token) and the error records in source order.
type ScanResult struct {
	Source *source.SourceFile
	Tokens []Token
	Errors []*errors.LexicalError
}

// HasErrors reports whether the scan produced any lexical errors. The scanner
// itself never treats errors as fatal; that judgment belongs to the caller.
func (r *ScanResult) HasErrors() bool { return len(r.Errors) > 0 }

// Summary returns the errors grouped by kind, ready for display.
func (r *ScanResult) Summary() errors.Summary { return errors.Summarize(r.Errors) }

// Scan tokenizes src in one call. Scanning is total and deterministic:
// every finite input yields a complete result, and rescanning the same text
// yields an identical one.
func Scan(src *source.SourceFile) *ScanResult {
	l := NewLexer(src)
	res := &ScanResult{Source: src}
	for {
		tok := l.NextToken()
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	res.Errors = l.errs
	return res
}

// ScanString tokenizes a bare string, wrapping it as eval input.
func ScanString(input string) *ScanResult {
	return Scan(source.NewEvalSource(input))
}
