package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

func TestStringLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		lexeme string
	}{
		{"simple", "$hello$", "$hello$"},
		{"with spaces", "$hello world$", "$hello world$"},
		{"empty", "$$", "$$"},
		{"adjacent strings", "$a$$b$", "$a$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScanString(tt.input)
			require.NotEmpty(t, result.Tokens)
			assert.Equal(t, String, result.Tokens[0].Kind)
			assert.Equal(t, tt.lexeme, result.Tokens[0].Lexeme)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestUnterminatedStringAtLineBreak(t *testing.T) {
	t.Parallel()

	result := ScanString("$open\n071next = 1")

	require.Len(t, result.Errors, 1)
	err := result.Errors[0]
	assert.Equal(t, errors.UnterminatedString, err.ErrKind)
	assert.Equal(t, "$open", err.Lexeme)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 1, err.Column)

	// Scanning resumes normally on the next line.
	var kinds []Kind
	for _, tok := range result.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{ErrUnterminatedString, Identifier, Operator, Number, EOF}, kinds)
	assert.Equal(t, 2, result.Tokens[1].Line)
}

func TestUnterminatedStringAtEOF(t *testing.T) {
	t.Parallel()

	result := ScanString("071x = $dangling")

	require.Len(t, result.Errors, 1)
	assert.Equal(t, errors.UnterminatedString, result.Errors[0].ErrKind)
	assert.Equal(t, "$dangling", result.Errors[0].Lexeme)
	assert.Contains(t, result.Errors[0].Suggestion, "$")
}

// A terminator is required before the line break even when a closing '$'
// exists further down: the literal never spans lines.
func TestMultiLineStringRejected(t *testing.T) {
	t.Parallel()

	result := ScanString("$multi\nline$")

	require.NotEmpty(t, result.Errors)
	assert.Equal(t, errors.UnterminatedString, result.Errors[0].ErrKind)
	assert.Equal(t, "$multi", result.Errors[0].Lexeme)
}
