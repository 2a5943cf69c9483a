// Package geo wraps the two outbound services the visit flow depends on:
// free-text address geocoding and postal-code commune lookup.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the geocoder has no candidate for an address.
// Callers must not persist a visit in that case.
var ErrNotFound = errors.New("address not found")

// Point is a geocoded coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text address to a single coordinate pair.
type Geocoder interface {
	Geocode(ctx context.Context, address, country string) (Point, error)
}

// NominatimClient is a minimal client for a Nominatim-style search endpoint.
// First candidate wins; ambiguous addresses are not disambiguated.
type NominatimClient struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

var _ Geocoder = (*NominatimClient)(nil)

func NewNominatimClient(baseURL, userAgent string) *NominatimClient {
	return &NominatimClient{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode searches for "address, country" and returns the best match.
// Country defaults to France when empty.
func (c *NominatimClient) Geocode(ctx context.Context, address, country string) (Point, error) {
	if country == "" {
		country = "France"
	}

	q := url.Values{}
	q.Set("q", fmt.Sprintf("%s, %s", address, country))
	q.Set("format", "jsonv2")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Point{}, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Point{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return Point{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}
	return Point{Lat: lat, Lon: lon}, nil
}
