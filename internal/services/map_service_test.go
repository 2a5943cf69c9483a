package services

import (
	"errors"
	"testing"

	"fullwoodjoz/visitus/internal/dataset"
)

func mapTable() *dataset.Table {
	return &dataset.Table{
		Columns: []string{"farm", "name", "product", "lat", "lon"},
		Rows: []map[string]string{
			{"farm": "GAEC du Pont", "name": "Dupont", "product": "Nano", "lat": "44.8", "lon": "-0.58"},
			{"farm": "EARL des Prés", "name": "Martin", "product": "Moov", "lat": "48.86", "lon": "2.35"},
			// Merge anchor: empty cells, no coordinates.
			{"farm": "", "name": "", "product": "", "lat": "", "lon": ""},
		},
	}
}

func TestBuildMapViewSkipsAnchorMarkers(t *testing.T) {
	view, err := BuildMapView(mapTable(), "product", []string{"Nano", "Moov", ""}, []string{"red", "green", "blue"}, 4)
	if err != nil {
		t.Fatalf("BuildMapView: %v", err)
	}

	if len(view.Points) != 2 {
		t.Fatalf("expected 2 markers, anchor must not become one, got %d", len(view.Points))
	}
	for _, p := range view.Points {
		if p.Geohash == "" {
			t.Fatalf("marker %s missing geohash", p.Farm)
		}
		if p.Color == "" {
			t.Fatalf("marker %s missing color", p.Farm)
		}
	}

	if view.Bounds == nil || view.Center == nil {
		t.Fatal("expected bounds and center for two markers")
	}
	if view.Bounds.MinLat != 44.8 || view.Bounds.MaxLat != 48.86 {
		t.Fatalf("bounds = %+v", view.Bounds)
	}
}

func TestBuildMapViewDefaultSelection(t *testing.T) {
	view, err := BuildMapView(mapTable(), "product", nil, nil, 0)
	if err != nil {
		t.Fatalf("BuildMapView: %v", err)
	}
	// Distinct values of product: Nano, Moov, "" (anchor). All colored.
	if len(view.Colors) != 3 {
		t.Fatalf("expected 3 colored values, got %v", view.Colors)
	}
	if view.Colors["Nano"] != dataset.DefaultPalette[0] {
		t.Fatalf("first-seen value not on first palette slot: %v", view.Colors)
	}
}

func TestBuildMapViewPaletteOverflow(t *testing.T) {
	_, err := BuildMapView(mapTable(), "product", []string{"Nano", "Moov", ""}, []string{"red"}, 4)
	if !errors.Is(err, dataset.ErrPaletteExhausted) {
		t.Fatalf("expected ErrPaletteExhausted, got %v", err)
	}
}

func TestVisitCountsOrdering(t *testing.T) {
	table := &dataset.Table{
		Columns: []string{"sales"},
		Rows: []map[string]string{
			{"sales": "Yann"},
			{"sales": "Marine"},
			{"sales": "Marine"},
			{"sales": ""},
		},
	}

	res := VisitCounts(table)
	if res.Total != 3 {
		t.Fatalf("total = %d, anchor row must not count", res.Total)
	}
	if len(res.BySale) != 2 {
		t.Fatalf("expected 2 salespeople, got %v", res.BySale)
	}
	if res.BySale[0].Sales != "Marine" || res.BySale[0].Count != 2 {
		t.Fatalf("most active first, got %+v", res.BySale[0])
	}
}
