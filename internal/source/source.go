package source

import "fmt"

type (
	// FileID uniquely identifies a pattern file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a file entered the FileSet.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures content and metadata for a single pattern file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // байтовые позиции всех '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position in a file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span to include other. Spans from different files
// are not comparable; the receiver wins.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the file bytes the span points at.
func (f *File) Text(s Span) string {
	if s.Start >= uint32(len(f.Content)) || s.End > uint32(len(f.Content)) || s.Start > s.End {
		return ""
	}
	return string(f.Content[s.Start:s.End])
}
