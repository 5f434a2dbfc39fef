// --- storage/store.go ---
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection persists one ordered slice of records as a pretty-printed
// JSON array in a single file. Every mutation is a full
// read-modify-write cycle; the per-collection mutex makes that cycle a
// critical section so concurrent requests cannot interleave writes.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection binds a collection to its backing file. The file is not
// created until the first Save.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Load returns the current records. A missing or unparseable file is
// treated as an empty collection rather than an error.
func (c *Collection[T]) Load() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save replaces the entire collection on disk.
func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs fn against the current records and persists whatever it
// returns, all under the collection mutex. If fn returns an error,
// nothing is written.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load())
	if err != nil {
		return err
	}
	return c.save(records)
}

func (c *Collection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// save writes to a temp file in the same directory and renames it over
// the target, so a reader never observes a partial write.
func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", c.path, err)
	}
	return nil
}
