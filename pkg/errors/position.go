package errors

import "github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/source"

// Position represents a specific location in the source code.
// It includes line and column numbers (1-based) for human-readability,
// and byte offsets (0-based) for tooling.
type Position struct {
	Line     int                // 1-based line number
	Column   int                // 1-based column number of the start of the span
	StartPos int                // 0-based byte offset of the start of the span
	EndPos   int                // 0-based byte offset of the end of the span (exclusive)
	Source   *source.SourceFile // Reference to the source file, may be nil
}
