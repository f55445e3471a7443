package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
)

func TestNewModelPreloadsAndScans(t *testing.T) {
	m := NewModel("071x = 1;")

	require.NotNil(t, m.result)
	assert.False(t, m.result.HasErrors())
	// 071x, =, 1, ;, EOF
	assert.Len(t, m.tokenTable.Rows(), 5)
	assert.Equal(t, "IDENTIFIER", m.tokenTable.Rows()[0][1])
	assert.Equal(t, "<eof>", m.tokenTable.Rows()[4][2])
}

func TestNewModelEmptyStartsUnscanned(t *testing.T) {
	m := NewModel("")

	assert.Nil(t, m.result)
	assert.Empty(t, m.tokenTable.Rows())
}

func TestRescanRefreshesErrorPane(t *testing.T) {
	m := NewModel("")
	m.editor.SetValue("071x = 1.2.3;")
	m.rescan()

	require.NotNil(t, m.result)
	assert.True(t, m.result.HasErrors())
}

func TestRenderErrors(t *testing.T) {
	out := renderErrors(lexer.ScanString("071x = $oops"))

	assert.Contains(t, out, "UNTERMINATED_STRING (1)")
	assert.Contains(t, out, "line 1, col 8:")
	assert.Contains(t, out, "hint:")
}

func TestRenderErrorsClean(t *testing.T) {
	assert.Empty(t, renderErrors(lexer.ScanString("071x;")))
}

func TestTokenColumns(t *testing.T) {
	cols := tokenColumns(100)
	require.Len(t, cols, 5)
	assert.Equal(t, "Lexeme", cols[2].Title)
	assert.Equal(t, 60, cols[2].Width)

	// Narrow widths clamp instead of going negative.
	assert.Equal(t, 12, tokenColumns(30)[2].Width)
}

func TestExamplesScanable(t *testing.T) {
	require.NotEmpty(t, examples)
	for _, ex := range examples {
		assert.NotEmpty(t, ex.name)
		res := lexer.ScanString(ex.code)
		assert.NotEmpty(t, res.Tokens, "example %q produced no tokens", ex.name)
	}
}
