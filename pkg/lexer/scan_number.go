package lexer

import (
	"fmt"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// scanNumber consumes a maximal numeric literal:
//
//	digits | '.' digits | digits '.' digits
//
// optionally followed by ('e'|'E') ['+'|'-'] digits. A malformed run (second
// decimal point, trailing decimal point, or an exponent marker without
// digits) yields a single INVALID_NUMBER token covering the run. The span
// ends at the first character that cannot extend a numeric form; the
// classifier resumes there without panic-mode skipping.
func (l *Lexer) scanNumber(startLine, startCol, startPos int) Token {
	sawDot := false

	if l.ch == '.' {
		// Leading-dot form; the classifier guarantees a digit follows.
		sawDot = true
		l.readChar()
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && !sawDot {
		sawDot = true
		l.readChar()
		if !isDigit(l.ch) {
			// Trailing decimal point, e.g. "5.". Unless another dot follows,
			// in which case the run has an extra decimal point ("5..3").
			if l.ch == '.' {
				return l.malformedNumber(startLine, startCol, startPos)
			}
			return l.emitError(errors.InvalidNumber,
				fmt.Sprintf("invalid number %q: missing digits after decimal point", l.input[startPos:l.position]),
				startLine, startCol, startPos, l.position)
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == '.' {
		// Second decimal point within the same run, e.g. "1.2.3".
		return l.malformedNumber(startLine, startCol, startPos)
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			return l.emitError(errors.InvalidNumber,
				fmt.Sprintf("invalid number %q: missing digits after exponent marker", l.input[startPos:l.position]),
				startLine, startCol, startPos, l.position)
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return Token{
		Kind:     Number,
		Lexeme:   l.input[startPos:l.position],
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.position,
	}
}

// malformedNumber consumes the rest of a number run that already contains an
// extra decimal point, so the whole run becomes one error token rather than a
// number followed by stray fragments.
func (l *Lexer) malformedNumber(startLine, startCol, startPos int) Token {
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.emitError(errors.InvalidNumber,
		fmt.Sprintf("invalid number %q: more than one decimal point", l.input[startPos:l.position]),
		startLine, startCol, startPos, l.position)
}
