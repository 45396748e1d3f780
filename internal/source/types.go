package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (cell, stdin, test).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
// Offsets into a file (spans, LineIdx) count characters (runes), not bytes,
// so that they address the same positions as a Mapped built from the text.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Chars   []rune
	LineIdx []uint32 // character offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
