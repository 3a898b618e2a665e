package driver

import (
	"rlekit/internal/diag"
	"rlekit/internal/parser"
	"rlekit/internal/rle"
	"rlekit/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	FileID  source.FileID
	Doc     *rle.Document
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics), nil
}

// ParseText парсит данные из памяти (stdin, тесты).
func ParseText(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	result := parser.ParseFile(file, parser.Options{MaxErrors: maxDiagnostics})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		FileID:  fileID,
		Doc:     result.Doc,
		Bag:     result.Bag,
	}
}
