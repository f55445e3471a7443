package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvalSource(t *testing.T) {
	t.Parallel()

	sf := NewEvalSource("071x = 1;")
	assert.Equal(t, "<eval>", sf.Name)
	assert.Empty(t, sf.Path)
	assert.Equal(t, "071x = 1;", sf.Content)
	assert.False(t, sf.IsFile())
	assert.Equal(t, "<eval>", sf.DisplayPath())
}

func TestNewReplSource(t *testing.T) {
	t.Parallel()

	sf := NewReplSource("return 071x;")
	assert.Equal(t, "<repl>", sf.Name)
	assert.False(t, sf.IsFile())
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	sf := FromFile("/tmp/examples/program.ib", "func 071main() {}")
	assert.Equal(t, "program.ib", sf.Name)
	assert.Equal(t, "/tmp/examples/program.ib", sf.Path)
	assert.True(t, sf.IsFile())
	assert.Equal(t, "/tmp/examples/program.ib", sf.DisplayPath())
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.ib")
	require.NoError(t, os.WriteFile(path, []byte("071x = 1;\n"), 0o644))

	sf, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "input.ib", sf.Name)
	assert.Equal(t, "071x = 1;\n", sf.Content)

	_, err = ReadFile(filepath.Join(dir, "missing.ib"))
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	t.Parallel()

	sf := NewEvalSource("first\nsecond\nthird")
	require.Equal(t, []string{"first", "second", "third"}, sf.Lines())

	assert.Equal(t, "first", sf.Line(1))
	assert.Equal(t, "third", sf.Line(3))
	assert.Empty(t, sf.Line(0))
	assert.Empty(t, sf.Line(4))
}
