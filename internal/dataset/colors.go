package dataset

import (
	"errors"
	"fmt"
)

// ColorColumn is the presentation-only column appended by AssignColors.
// It is never written back to a tenant file.
const ColorColumn = "color"

// ErrPaletteExhausted is returned when more categories are selected than the
// palette has colors. Reusing a color would visually conflate two categories
// on the map, so this fails loudly instead of wrapping around.
var ErrPaletteExhausted = errors.New("more selected values than palette colors")

// DefaultPalette is the qualitative palette used by the map legend.
var DefaultPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// AssignColors maps each selected value of column to a palette color, indexed
// by its position in the selection order, and filters the table down to rows
// whose column value is selected. The returned table carries one appended
// color column; row order among retained rows is unchanged.
//
// A nil selection means every distinct value of column, in first-seen order.
// A nil palette means DefaultPalette. Selection order is the only thing that
// keys color assignment: reordering the selection reassigns colors.
func AssignColors(t *Table, column string, selected []string, palette []string) (*Table, map[string]string, error) {
	if palette == nil {
		palette = DefaultPalette
	}
	if selected == nil {
		selected = t.DistinctValues(column)
	}
	if len(selected) > len(palette) {
		return nil, nil, fmt.Errorf("%w: %d selected, %d colors", ErrPaletteExhausted, len(selected), len(palette))
	}

	colors := make(map[string]string, len(selected))
	for i, v := range selected {
		colors[v] = palette[i]
	}

	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if !out.HasColumn(ColorColumn) {
		out.Columns = append(out.Columns, ColorColumn)
	}
	for _, row := range t.Rows {
		c, ok := colors[row[column]]
		if !ok {
			continue
		}
		copied := make(map[string]string, len(row)+1)
		for k, v := range row {
			copied[k] = v
		}
		copied[ColorColumn] = c
		out.Rows = append(out.Rows, copied)
	}
	return out, colors, nil
}

// LegendEntry is one legend item: a category value, its assigned color and
// the number of named rows in that category.
type LegendEntry struct {
	Value string `json:"value"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// BuildLegend lays the selected values out as legend rows of at most
// maxPerRow items. Counting goes by the nameColumn so the merge anchor row
// (which has no name) never inflates a category.
func BuildLegend(t *Table, column string, selected []string, colors map[string]string, nameColumn string, maxPerRow int) [][]LegendEntry {
	if maxPerRow < 1 {
		maxPerRow = 1
	}

	counts := make(map[string]int, len(selected))
	for _, row := range t.Rows {
		if row[nameColumn] == EmptyMarker {
			continue
		}
		counts[row[column]]++
	}

	rowCount := (len(selected) + maxPerRow - 1) / maxPerRow
	legend := make([][]LegendEntry, 0, rowCount)
	var current []LegendEntry
	for _, v := range selected {
		current = append(current, LegendEntry{
			Value: v,
			Color: colors[v],
			Count: counts[v],
		})
		if len(current) == maxPerRow {
			legend = append(legend, current)
			current = nil
		}
	}
	if len(current) > 0 {
		legend = append(legend, current)
	}
	return legend
}
