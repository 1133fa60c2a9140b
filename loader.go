package navlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// LoadHistory opens and decodes the history file.
// A missing file is the first run: it returns an empty table.
// Any other failure is a *StoreIOError.
func LoadHistory(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, &StoreIOError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := DecodeHistory(f)
	if err != nil {
		return nil, &StoreIOError{Path: path, Err: err}
	}
	return t, nil
}

// SaveHistory writes the table to path.
//
// The table is written to a temporary file in the same folder which is then renamed
// over path, so an interrupted run never leaves a truncated history behind.
func SaveHistory(path string, t *Table) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	// Once renamed, this is a no-op.
	defer os.Remove(tmp.Name())

	if err := EncodeHistory(tmp, t); err != nil {
		tmp.Close()
		return &StoreIOError{Path: path, Err: fmt.Errorf("cannot write: %w", err)}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &StoreIOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	// CreateTemp uses 0600, the history is a regular document.
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StoreIOError{Path: path, Err: err}
	}
	return nil
}

// MergeFile loads the history at path, merges the batch fetched at fetchedAt and saves it back.
// It returns the number of rows replaced.
func MergeFile(path string, b *Batch, fetchedAt time.Time) (replaced int, err error) {
	t, err := LoadHistory(path)
	if err != nil {
		return 0, err
	}
	replaced = t.Merge(b, fetchedAt)
	if err := SaveHistory(path, t); err != nil {
		return 0, err
	}
	return replaced, nil
}
