package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"name", "product"},
		Rows: []map[string]string{
			{"name": "a", "product": "Nano"},
			{"name": "b", "product": "Moov"},
			{"name": "c", "product": "Nano"},
			{"name": "d", "product": "Barn-E"},
		},
	}
}

func TestAssignColorsBySelectionOrder(t *testing.T) {
	palette := []string{"red", "green", "blue"}
	selected := []string{"Moov", "Nano"}

	filtered, colors, err := AssignColors(sampleTable(), "product", selected, palette)
	if err != nil {
		t.Fatalf("AssignColors: %v", err)
	}

	if colors["Moov"] != "red" || colors["Nano"] != "green" {
		t.Fatalf("colors not indexed by selection order: %v", colors)
	}
	if len(colors) != 2 {
		t.Fatalf("expected exactly 2 mapped values, got %v", colors)
	}

	// Retained rows keep their input order.
	var names []string
	for _, row := range filtered.Rows {
		names = append(names, row["name"])
	}
	if !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		t.Fatalf("filtered row order = %v, want [a b c]", names)
	}
	if filtered.Rows[0][ColorColumn] != "green" {
		t.Fatalf("row a color = %q, want green (Nano)", filtered.Rows[0][ColorColumn])
	}
}

func TestAssignColorsDefaultsToDistinctOrder(t *testing.T) {
	palette := []string{"red", "green", "blue"}

	_, colors, err := AssignColors(sampleTable(), "product", nil, palette)
	if err != nil {
		t.Fatalf("AssignColors: %v", err)
	}

	// First-seen order: Nano, Moov, Barn-E.
	if colors["Nano"] != "red" || colors["Moov"] != "green" || colors["Barn-E"] != "blue" {
		t.Fatalf("default selection not in first-seen order: %v", colors)
	}
}

func TestAssignColorsPaletteExhausted(t *testing.T) {
	palette := []string{"red", "green"}

	_, _, err := AssignColors(sampleTable(), "product", nil, palette)
	if err == nil {
		t.Fatal("expected palette overflow error")
	}
	if !errors.Is(err, ErrPaletteExhausted) {
		t.Fatalf("expected ErrPaletteExhausted, got %v", err)
	}
}

func TestAssignColorsAppendsColorColumn(t *testing.T) {
	filtered, _, err := AssignColors(sampleTable(), "product", []string{"Nano"}, []string{"red"})
	if err != nil {
		t.Fatalf("AssignColors: %v", err)
	}
	if filtered.Columns[len(filtered.Columns)-1] != ColorColumn {
		t.Fatalf("color column not appended: %v", filtered.Columns)
	}
	if len(filtered.Rows) != 2 {
		t.Fatalf("expected 2 Nano rows, got %d", len(filtered.Rows))
	}
}

func TestBuildLegendLayout(t *testing.T) {
	table := sampleTable()
	// Anchor-like row: no name, must not count.
	table.Rows = append(table.Rows, map[string]string{"name": "", "product": "Nano"})

	selected := []string{"Nano", "Moov", "Barn-E"}
	colors := map[string]string{"Nano": "red", "Moov": "green", "Barn-E": "blue"}

	legend := BuildLegend(table, "product", selected, colors, "name", 2)

	if len(legend) != 2 {
		t.Fatalf("expected ceil(3/2)=2 legend rows, got %d", len(legend))
	}
	if len(legend[0]) != 2 || len(legend[1]) != 1 {
		t.Fatalf("legend layout = %d,%d items, want 2,1", len(legend[0]), len(legend[1]))
	}
	if legend[0][0].Value != "Nano" || legend[0][0].Count != 2 {
		t.Fatalf("Nano entry = %+v, want count 2 (anchor row not counted)", legend[0][0])
	}
	if legend[1][0].Value != "Barn-E" || legend[1][0].Color != "blue" || legend[1][0].Count != 1 {
		t.Fatalf("Barn-E entry = %+v", legend[1][0])
	}
}
