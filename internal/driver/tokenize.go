// Package driver wires the lexer and parser into file- and
// directory-level entry points for the CLI, plus a disk cache for
// already validated patterns.
package driver

import (
	"rlekit/internal/diag"
	"rlekit/internal/lexer"
	"rlekit/internal/parser"
	"rlekit/internal/source"
	"rlekit/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeText токенизирует данные из памяти (stdin, тесты).
func TokenizeText(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	if maxDiagnostics <= 0 {
		maxDiagnostics = parser.DefaultMaxErrors
	}
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporterAdapter.Reporter()})

	// Собираем все токены до EOF.
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
