package lexer

import (
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// scanString consumes a $-delimited string literal. The closing delimiter
// must appear before the next line break; multi-line strings are unsupported.
// The lexeme keeps both delimiters. An unterminated literal becomes an
// UNTERMINATED_STRING token spanning from the opening '$' to the line break
// or end of input; the line break itself is left for the classifier.
func (l *Lexer) scanString(startLine, startCol, startPos int) Token {
	l.readChar() // consume the opening '$'

	for l.ch != 0 && l.ch != '\n' {
		if l.ch == '$' {
			l.readChar() // consume the closing '$'
			return Token{
				Kind:     String,
				Lexeme:   l.input[startPos:l.position],
				Line:     startLine,
				Column:   startCol,
				StartPos: startPos,
				EndPos:   l.position,
			}
		}
		l.readChar()
	}

	return l.emitError(errors.UnterminatedString,
		"unterminated string literal: closing '$' required before end of line",
		startLine, startCol, startPos, l.position)
}
