package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/errors"
)

func TestPrefixedIdentifiers(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"071name", "071test_var", "071x", "0712025",
		"070counter", "070z", "070",
		"048_temp", "048global", "048a",
	}

	for _, input := range inputs {
		result := ScanString(input)
		require.Len(t, result.Tokens, 2, "input %q", input)
		assert.Equal(t, Identifier, result.Tokens[0].Kind, "input %q", input)
		assert.Equal(t, input, result.Tokens[0].Lexeme, "input %q", input)
		assert.Empty(t, result.Errors, "input %q", input)
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"if", "else", "while", "return", "func"} {
		result := ScanString(word)
		require.Len(t, result.Tokens, 2, "keyword %q", word)
		assert.Equal(t, Keyword, result.Tokens[0].Kind, "keyword %q", word)
		assert.Equal(t, word, result.Tokens[0].Lexeme)
	}

	// Keyword matching is exact: a different casing is just an unprefixed name.
	result := ScanString("If")
	assert.Equal(t, ErrInvalidIdentifier, result.Tokens[0].Kind)
}

// A keyword immediately preceded by a valid prefix lexes as an identifier,
// not a keyword.
func TestPrefixedKeywordIsIdentifier(t *testing.T) {
	t.Parallel()

	result := ScanString("func 071func 070while 048return")

	require.Empty(t, result.Errors)
	require.Len(t, result.Tokens, 5)
	assert.Equal(t, Keyword, result.Tokens[0].Kind)
	for i := 1; i <= 3; i++ {
		assert.Equal(t, Identifier, result.Tokens[i].Kind, "token %d", i)
	}
}

func TestInvalidIdentifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		lexeme string
	}{
		{"name", "name"},
		{"abc123", "abc123"},
		{"_071invalid", "_071invalid"},
		{"_", "_"},
		{"x_1", "x_1"},
	}

	for _, tt := range tests {
		result := ScanString(tt.input)
		require.Len(t, result.Errors, 1, "input %q", tt.input)
		err := result.Errors[0]
		assert.Equal(t, errors.InvalidIdentifier, err.ErrKind, "input %q", tt.input)
		assert.Equal(t, tt.lexeme, err.Lexeme, "input %q", tt.input)
		assert.NotEmpty(t, err.Suggestion, "input %q", tt.input)
	}
}

// An invalid name run is fully delimited by the scanner, so the tokens after
// it on the same line still lex normally.
func TestInvalidIdentifierDoesNotSwallowRest(t *testing.T) {
	t.Parallel()

	result := ScanString("_071test 071_valid _invalid 070_valid 048_valid")

	var kinds []Kind
	for _, tok := range result.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []Kind{
		ErrInvalidIdentifier, Identifier, ErrInvalidIdentifier, Identifier, Identifier, EOF,
	}, kinds)
	assert.Len(t, result.Errors, 2)
}

// Digit runs that almost look like a prefix fall through to the number
// scanner.
func TestNearPrefixDigitsAreNumbers(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"072", "047", "049", "0815"} {
		result := ScanString(input)
		require.Len(t, result.Tokens, 2, "input %q", input)
		assert.Equal(t, Number, result.Tokens[0].Kind, "input %q", input)
		assert.Equal(t, input, result.Tokens[0].Lexeme, "input %q", input)
	}
}
