package colormph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// WriteFile serializes the table to path. The bytes are written to a
// temporary file in the same directory, synced, and renamed into place, so
// a crash never leaves a partially written table at path.
func WriteFile(t *Table, path string) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp table file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("write table file: %w", err), tmp.Close(), os.Remove(tmpName))
	}
	if err := tmp.Sync(); err != nil {
		return errors.Join(fmt.Errorf("sync table file: %w", err), tmp.Close(), os.Remove(tmpName))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("close table file: %w", err), os.Remove(tmpName))
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Join(fmt.Errorf("rename table file: %w", err), os.Remove(tmpName))
	}
	return nil
}

// Open reads a serialized table from path.
//
// The file is memory-mapped read-only and parsed in place, avoiding a
// double buffer for large palettes; the mapping is released before Open
// returns, so the Table owns all of its memory and the file may be removed
// afterwards.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap table file: %w", err)
	}
	prefaultRegion(mm)

	t := &Table{}
	if err := t.UnmarshalBinary(mm); err != nil {
		return nil, errors.Join(err, mm.Unmap())
	}
	if err := mm.Unmap(); err != nil {
		return nil, fmt.Errorf("unmap table file: %w", err)
	}
	return t, nil
}
