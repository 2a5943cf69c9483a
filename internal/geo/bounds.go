package geo

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// geohashPrecision of 7 gives ~150m cells, enough for farm-level clustering.
const geohashPrecision = 7

// Bounds is the lat/lon rectangle enclosing a set of points, used as the
// map's fit-bounds hint.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// BoundsOf computes the enclosing rectangle and its center. ok is false when
// there are no points.
func BoundsOf(points []Point) (b Bounds, center Point, ok bool) {
	if len(points) == 0 {
		return Bounds{}, Point{}, false
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}

	b = Bounds{
		MinLat: rect.Lo().Lat.Degrees(),
		MinLon: rect.Lo().Lng.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MaxLon: rect.Hi().Lng.Degrees(),
	}
	c := rect.Center()
	return b, Point{Lat: c.Lat.Degrees(), Lon: c.Lng.Degrees()}, true
}

// Geohash returns the cell hash for a point, for client-side clustering.
func Geohash(p Point) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lon, geohashPrecision)
}
