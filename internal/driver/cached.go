package driver

import (
	"rlekit/internal/diag"
	"rlekit/internal/source"
)

// CachedParseResult is a ParseResult plus cache provenance.
type CachedParseResult struct {
	*ParseResult
	FromCache bool
}

// ParseFileCached парсит файл, используя дисковый кэш по хэшу
// содержимого. Кэшируются только чистые разборы; любой файл с
// диагностиками парсится заново при каждом запуске.
func ParseFileCached(cache *DiskCache, path string, maxDiagnostics int) (*CachedParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	key := Digest(file.Hash)

	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err == nil && hit {
		if doc := diskPayloadToDocument(&payload); doc != nil {
			return &CachedParseResult{
				ParseResult: &ParseResult{
					FileSet: fs,
					File:    file,
					FileID:  fileID,
					Doc:     doc,
					Bag:     diag.NewBag(maxDiagnostics),
				},
				FromCache: true,
			}, nil
		}
	}
	// Ошибку чтения кэша не поднимаем: парсим заново.

	res := parseLoaded(fs, fileID, maxDiagnostics)
	if !res.Bag.HasErrors() {
		if err := cache.Put(key, documentToDiskPayload(path, res.Doc)); err != nil {
			return nil, err
		}
	}
	return &CachedParseResult{ParseResult: res}, nil
}
