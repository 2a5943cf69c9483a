package dtos

import (
	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/geo"
)

// VisitResponse confirms a recorded visit.
type VisitResponse struct {
	Tenant string  `json:"tenant"`
	Farm   string  `json:"farm"`
	Dept   string  `json:"dept"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// CityLookupResponse carries the commune candidates for a postal code. A
// malformed code yields a single marker entry, not an error status.
type CityLookupResponse struct {
	PostalCode string   `json:"postal_code"`
	Cities     []string `json:"cities"`
}

// DatasetListResponse lists the tenant files plus the synthetic merge-all
// option.
type DatasetListResponse struct {
	Files       []string `json:"files"`
	MergeOption string   `json:"merge_option"`
}

// TableResponse is a dataset snapshot in column order.
type TableResponse struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// MapPoint is one colored marker.
type MapPoint struct {
	Farm    string  `json:"farm"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Geohash string  `json:"geohash"`
}

// MapView is the map payload: colored points, legend rows and a fit-bounds
// hint.
type MapView struct {
	Points []MapPoint              `json:"points"`
	Legend [][]dataset.LegendEntry `json:"legend"`
	Colors map[string]string       `json:"colors"`
	Bounds *geo.Bounds             `json:"bounds,omitempty"`
	Center *geo.Point              `json:"center,omitempty"`
}

// SalesCount is one analytics row: visits recorded by one salesperson.
type SalesCount struct {
	Sales string `json:"sales"`
	Count int    `json:"count"`
}

// AnalyticsResponse is the visit-count breakdown.
type AnalyticsResponse struct {
	Total  int          `json:"total"`
	BySale []SalesCount `json:"by_sales"`
}

// LoginResponse returns the bearer token; the session rides on a cookie.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

func TableFrom(t *dataset.Table) TableResponse {
	rows := t.Rows
	if rows == nil {
		rows = []map[string]string{}
	}
	cols := t.Columns
	if cols == nil {
		cols = []string{}
	}
	return TableResponse{Columns: cols, Rows: rows}
}
