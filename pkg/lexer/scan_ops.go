package lexer

import (
	"fmt"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// scanOperator matches the longest operator at the current position
// (maximal munch: "<=" beats "<", but adjacent "<" and ">" stay separate
// tokens) and falls through to punctuation. A character matching neither
// table goes to the recovery engine as INVALID_SYMBOL.
func (l *Lexer) scanOperator(startLine, startCol, startPos int) Token {
	pair := string(l.ch) + string(l.peekChar())
	if _, ok := twoCharOperators[pair]; ok {
		l.readChar()
		l.readChar()
		return Token{
			Kind:     Operator,
			Lexeme:   pair,
			Line:     startLine,
			Column:   startCol,
			StartPos: startPos,
			EndPos:   l.position,
		}
	}

	if isOperatorChar(l.ch) {
		lexeme := string(l.ch)
		l.readChar()
		return Token{
			Kind:     Operator,
			Lexeme:   lexeme,
			Line:     startLine,
			Column:   startCol,
			StartPos: startPos,
			EndPos:   l.position,
		}
	}

	if isPunctuation(l.ch) {
		lexeme := string(l.ch)
		l.readChar()
		return Token{
			Kind:     Punctuation,
			Lexeme:   lexeme,
			Line:     startLine,
			Column:   startCol,
			StartPos: startPos,
			EndPos:   l.position,
		}
	}

	// No table matches this character: emit INVALID_SYMBOL and resynchronize.
	ch := l.ch
	l.readChar()
	tok := l.emitError(errors.InvalidSymbol,
		fmt.Sprintf("invalid symbol %q", string(ch)),
		startLine, startCol, startPos, l.position)
	l.panicRecover()
	return tok
}
