package lexer

import (
	"fmt"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

// scanIdentifier consumes an identifier starting at a verified prefix
// (071, 070 or 048) followed by a maximal run of letters, digits and
// underscores.
func (l *Lexer) scanIdentifier(startLine, startCol, startPos int) Token {
	// The three prefix characters were checked by atIdentifierPrefix.
	l.readChar()
	l.readChar()
	l.readChar()

	for isNameChar(l.ch) {
		l.readChar()
	}

	return Token{
		Kind:     Identifier,
		Lexeme:   l.input[startPos:l.position],
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.position,
	}
}

// scanName consumes a maximal name run starting at a letter or underscore.
// An exact, unprefixed match against the keyword set lexes as a keyword;
// anything else lacks the required identifier prefix and is an
// INVALID_IDENTIFIER span. The run is already fully delimited, so normal
// dispatch resumes right after it without panic-mode skipping.
func (l *Lexer) scanName(startLine, startCol, startPos int) Token {
	for isNameChar(l.ch) {
		l.readChar()
	}
	word := l.input[startPos:l.position]

	if IsKeyword(word) {
		return Token{
			Kind:     Keyword,
			Lexeme:   word,
			Line:     startLine,
			Column:   startCol,
			StartPos: startPos,
			EndPos:   l.position,
		}
	}

	return l.emitError(errors.InvalidIdentifier,
		fmt.Sprintf("invalid identifier %q: identifiers must start with 071, 070, or 048", word),
		startLine, startCol, startPos, l.position)
}
