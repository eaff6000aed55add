package ingest

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// StageCache persists intermediate embedding results on disk, so an
// ingestion run interrupted halfway does not need to recompute the
// stages it already finished.
//
// Entries are keyed by pipeline stage and a content hash of the input
// texts. A run over different inputs therefore never reads another
// run's entries, even when they share the cache directory.
type StageCache struct {
	dir string
}

// NewStageCache creates the cache directory if needed and returns a
// cache rooted there.
func NewStageCache(dir string) (*StageCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ingest: create cache dir: %w", err)
	}
	return &StageCache{dir: dir}, nil
}

// HashTexts derives the cache key for a list of input texts. Texts are
// length-prefixed before hashing so that boundary shifts between
// adjacent texts produce different keys.
func HashTexts(texts []string) string {
	h := sha256.New()
	var lenBuf [8]byte
	for _, t := range texts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(t)))
		h.Write(lenBuf[:])
		h.Write([]byte(t))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// LookupStage returns the cached value for a stage and input hash. A
// missing file or an entry that fails to decode both count as a miss.
func LookupStage[T any](c *StageCache, stage, hash string) (T, bool) {
	var value T

	f, err := os.Open(c.entryPath(stage, hash))
	if err != nil {
		return value, false
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&value); err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

// StoreStage writes the value for a stage and input hash. The entry is
// written to a temporary file first and renamed into place, so readers
// never observe a partially written entry.
func StoreStage[T any](c *StageCache, stage, hash string, value T) error {
	path := c.entryPath(stage, hash)

	tmp, err := os.CreateTemp(c.dir, stage+"-*.tmp")
	if err != nil {
		return fmt.Errorf("ingest: create cache entry: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(value); err != nil {
		tmp.Close()
		return fmt.Errorf("ingest: encode cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ingest: close cache entry: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ingest: publish cache entry: %w", err)
	}
	return nil
}

func (c *StageCache) entryPath(stage, hash string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s.gob", stage, hash))
}
