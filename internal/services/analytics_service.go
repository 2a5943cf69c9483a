package services

import (
	"sort"

	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/models/dtos"
)

// VisitCounts tallies recorded visits per salesperson, most active first.
// The merge anchor row carries no salesperson and is skipped.
func VisitCounts(t *dataset.Table) dtos.AnalyticsResponse {
	counts := make(map[string]int)
	var order []string
	for _, row := range t.Rows {
		sales := row["sales"]
		if sales == dataset.EmptyMarker {
			continue
		}
		if _, seen := counts[sales]; !seen {
			order = append(order, sales)
		}
		counts[sales]++
	}

	bySales := make([]dtos.SalesCount, 0, len(order))
	for _, sales := range order {
		bySales = append(bySales, dtos.SalesCount{Sales: sales, Count: counts[sales]})
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(bySales, func(i, j int) bool {
		return bySales[i].Count > bySales[j].Count
	})

	total := 0
	for _, c := range bySales {
		total += c.Count
	}
	return dtos.AnalyticsResponse{Total: total, BySale: bySales}
}
