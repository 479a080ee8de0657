package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	FileExpandedTabs
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // байтовые смещения всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// Position is a zero-indexed row/column pair. Column counts characters, not bytes.
type Position struct {
	Row    int `json:"row" msgpack:"r"`
	Column int `json:"column" msgpack:"c"`
}

// Display renders the position the way users count: one-based.
func (p Position) Display() string {
	return fmt.Sprintf("line %d, column %d", p.Row+1, p.Column+1)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1)
}

// Less reports whether p comes strictly before q.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Column < q.Column
}

// Compare returns -1, 0 or +1, suitable for slices.SortFunc.
func (p Position) Compare(q Position) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}
