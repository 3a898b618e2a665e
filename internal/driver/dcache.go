package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"rlekit/internal/rle"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as a cache key.
type Digest [32]byte

// DiskCache хранит результаты разбора по хэшу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskEntry is one CXRLE key=value pair in cached form.
type DiskEntry struct {
	Key   string
	Value string
}

// DiskMetaLine is one cached '#CXRLE' line.
type DiskMetaLine struct {
	Entries []DiskEntry
}

// DiskItem is one cached content item.
type DiskItem struct {
	Kind  uint8 // rle.ItemKind
	Count uint32
	State uint8
}

// DiskPayload stores a parsed document for fast revalidation. Spans are
// not cached; a reconstructed document carries zero spans.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Source metadata
	Path string

	// Header
	X    int64
	Y    int64
	Rule string

	Metadata   []DiskMetaLine
	Items      []DiskItem
	Terminated bool
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "docs".
	return filepath.Join(c.dir, "docs", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", err)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// documentToDiskPayload converts a parsed document to its cached form.
func documentToDiskPayload(path string, doc *rle.Document) *DiskPayload {
	if doc == nil {
		return nil
	}

	payload := &DiskPayload{
		Schema:     diskCacheSchemaVersion,
		Path:       path,
		X:          doc.Header.X,
		Y:          doc.Header.Y,
		Rule:       doc.Header.Rule,
		Terminated: doc.Terminated,
	}

	payload.Metadata = make([]DiskMetaLine, len(doc.Metadata))
	for i, line := range doc.Metadata {
		entries := make([]DiskEntry, len(line.Entries))
		for j, e := range line.Entries {
			entries[j] = DiskEntry{Key: e.Key, Value: e.Value}
		}
		payload.Metadata[i] = DiskMetaLine{Entries: entries}
	}

	payload.Items = make([]DiskItem, len(doc.Body))
	for i, it := range doc.Body {
		payload.Items[i] = DiskItem{
			Kind:  uint8(it.Kind),
			Count: it.Count,
			State: it.State,
		}
	}

	return payload
}

// diskPayloadToDocument converts a cached payload back to a document.
// Spans are not cached, so every span comes back zero.
func diskPayloadToDocument(payload *DiskPayload) *rle.Document {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil
	}

	doc := &rle.Document{
		Header: rle.Header{
			X:    payload.X,
			Y:    payload.Y,
			Rule: payload.Rule,
		},
		Terminated: payload.Terminated,
	}

	doc.Metadata = make([]rle.MetadataLine, len(payload.Metadata))
	for i, line := range payload.Metadata {
		entries := make([]rle.Entry, len(line.Entries))
		for j, e := range line.Entries {
			entries[j] = rle.Entry{Key: e.Key, Value: e.Value}
		}
		doc.Metadata[i] = rle.MetadataLine{Entries: entries}
	}

	doc.Body = make([]rle.ContentItem, len(payload.Items))
	for i, it := range payload.Items {
		doc.Body[i] = rle.ContentItem{
			Kind:  rle.ItemKind(it.Kind),
			Count: it.Count,
			State: it.State,
		}
	}

	return doc
}
