package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// minFileNameLen filters out dotfiles and placeholder entries when listing
// a data directory. Not a strict validator.
const minFileNameLen = 3

// ListFiles returns the dataset file names in dir, in directory iteration
// order (not sorted). Only regular files with a non-trivial name count.
func ListFiles(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open data dir %s: %w", dir, err)
	}
	defer d.Close()

	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("list data dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if len(e.Name()) <= minFileNameLen {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// MergeAll unions every dataset file in dir into one table.
//
// With no files the result is an empty table, not an error. With exactly one
// file the result is identical to loading that file directly. With more than
// one file the result is seeded with a single anchor row carrying every
// canonical column mapped to the empty marker, then each file's rows are
// appended in ListFiles order. The anchor guarantees the merged table always
// exposes the full known schema even when the first file on disk is an old,
// narrower one.
func MergeAll(dir string) (*Table, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}

	switch len(files) {
	case 0:
		return &Table{}, nil
	case 1:
		return Load(filepath.Join(dir, files[0]))
	}

	merged := &Table{Columns: append([]string(nil), Columns...)}

	anchor := make(map[string]string, len(Columns))
	for _, col := range Columns {
		anchor[col] = EmptyMarker
	}
	merged.Rows = append(merged.Rows, anchor)

	known := make(map[string]bool, len(merged.Columns))
	for _, col := range merged.Columns {
		known[col] = true
	}

	for _, name := range files {
		t, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for _, col := range t.Columns {
			if !known[col] {
				known[col] = true
				merged.Columns = append(merged.Columns, col)
			}
		}
		merged.Rows = append(merged.Rows, t.Rows...)
	}
	return merged, nil
}
