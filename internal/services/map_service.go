package services

import (
	"strconv"

	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/geo"
	"fullwoodjoz/visitus/internal/models/dtos"
)

// legendMaxPerRow is the default legend layout width.
const legendMaxPerRow = 4

// BuildMapView filters and colors a table by one categorical column and
// turns it into markers, a legend and a fit-bounds hint. A nil selection
// means every distinct value of the column; a nil palette means the default
// one. Rows without numeric coordinates (the merge anchor among them) yield
// no marker but still shape the legend's category set.
func BuildMapView(t *dataset.Table, column string, selected []string, palette []string, maxPerRow int) (*dtos.MapView, error) {
	if maxPerRow <= 0 {
		maxPerRow = legendMaxPerRow
	}
	if selected == nil {
		selected = t.DistinctValues(column)
	}

	filtered, colors, err := dataset.AssignColors(t, column, selected, palette)
	if err != nil {
		return nil, err
	}

	view := &dtos.MapView{
		Colors: colors,
		Legend: dataset.BuildLegend(filtered, column, selected, colors, "name", maxPerRow),
	}

	var points []geo.Point
	for _, row := range filtered.Rows {
		lat, latErr := strconv.ParseFloat(row["lat"], 64)
		lon, lonErr := strconv.ParseFloat(row["lon"], 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		p := geo.Point{Lat: lat, Lon: lon}
		points = append(points, p)
		view.Points = append(view.Points, dtos.MapPoint{
			Farm:    row["farm"],
			Name:    row["name"],
			Lat:     lat,
			Lon:     lon,
			Color:   row[dataset.ColorColumn],
			Geohash: geo.Geohash(p),
		})
	}

	if bounds, center, ok := geo.BoundsOf(points); ok {
		view.Bounds = &bounds
		view.Center = &center
	}
	return view, nil
}
