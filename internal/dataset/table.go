// Package dataset loads per-tenant visitor files and prepares merged,
// filtered and color-annotated views of them for the map and analytics
// surfaces.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Delimiter used by all tenant dataset files. Semicolon, because the free
// text fields (farm names, addresses) routinely contain commas.
const Delimiter = ';'

// EmptyMarker is the explicit null value used for the anchor row.
const EmptyMarker = ""

// Columns is the canonical visitor schema, in file order. Older tenant files
// may carry a subset; the merger unions them against this list.
var Columns = []string{
	"date", "sales", "farm", "name", "address", "zip", "dept",
	"city", "mobile", "cows", "eqt", "brand", "product", "lat", "lon",
}

// Table is an in-memory snapshot of one or more dataset files. Column order
// is significant; rows are keyed by column name so files with drifted
// schemas can coexist in one table.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// Empty reports whether the table holds no rows and no columns.
func (t *Table) Empty() bool {
	return len(t.Columns) == 0 && len(t.Rows) == 0
}

// Value returns the named cell of row i, or the empty marker when the row
// does not carry that column.
func (t *Table) Value(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return EmptyMarker
	}
	return t.Rows[i][column]
}

// DistinctValues returns the distinct values of column in first-seen row
// order. The order matters: it is the default color selection order.
func (t *Table) DistinctValues(column string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		v := row[column]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// HasColumn reports whether the table exposes column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Load reads one dataset file verbatim: header row first, semicolon
// delimited, short rows padded with the empty marker (schema drift in old
// files shows up as missing trailing columns).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Delimiter
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := records[0]
	t := &Table{Columns: append([]string(nil), header...)}
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = EmptyMarker
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
