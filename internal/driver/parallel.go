package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rlekit/internal/diag"
	"rlekit/internal/parser"
	"rlekit/internal/rle"
	"rlekit/internal/source"
)

// ParseDirResult содержит результат парсинга одного файла.
type ParseDirResult struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Doc    *rle.Document // Распарсенный документ (nil при ошибке загрузки)
	Bag    *diag.Bag     // Диагностики
}

// listRLEFiles возвращает отсортированный список всех *.rle файлов в директории.
func listRLEFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rle") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir парсит все *.rle файлы в директории параллельно.
// Файлы грузятся последовательно (FileSet не потокобезопасен),
// парсинг идёт в jobs горутин.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	// <= 0 означает лимит по умолчанию, а не нулевой Bag: иначе
	// IOReadFail для нечитаемого файла потерялся бы молча.
	if maxDiagnostics <= 0 {
		maxDiagnostics = parser.DefaultMaxErrors
	}

	files, err := listRLEFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOReadFail,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{}, // для I/O ошибок span пустой
				})
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			res := parser.ParseFile(file, parser.Options{MaxErrors: maxDiagnostics})

			// Мьютекс не нужен: индекс i уникален.
			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				Doc:    res.Doc,
				Bag:    res.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}
