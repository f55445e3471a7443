package source

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceFile represents one immutable piece of IBTAC source text together
// with its display metadata. The scanner never reads files itself; callers
// build a SourceFile and hand it over.
type SourceFile struct {
	Name    string // Display name (e.g. "program.ib", "<eval>", "<repl>")
	Path    string // Full file path (empty for REPL/eval input)
	Content string // The source text
	lines   []string
}

// NewSourceFile creates a source file with explicit metadata.
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{
		Name:    name,
		Path:    path,
		Content: content,
	}
}

// NewEvalSource wraps an inline snippet (the `ibtac eval -e ...` path).
func NewEvalSource(content string) *SourceFile {
	return NewSourceFile("<eval>", "", content)
}

// NewReplSource wraps a single REPL input line.
func NewReplSource(content string) *SourceFile {
	return NewSourceFile("<repl>", "", content)
}

// FromFile creates a SourceFile from a path and already-read content.
func FromFile(filePath, content string) *SourceFile {
	return NewSourceFile(filepath.Base(filePath), filePath, content)
}

// ReadFile loads a file from disk and wraps it.
func ReadFile(filePath string) (*SourceFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return FromFile(filePath, string(data)), nil
}

// Lines returns the source split into lines (cached).
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// Line returns the 1-based line n, or "" when out of range.
func (sf *SourceFile) Line(n int) string {
	lines := sf.Lines()
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// DisplayPath returns the best identifier for display (prefers Path).
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile reports whether this represents an actual on-disk file.
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}
