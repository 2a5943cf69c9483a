package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocodeFirstMatchWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "visitus-test" {
			t.Errorf("User-Agent = %q, want visitus-test", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"44.8378","lon":"-0.5792"},{"lat":"48.8566","lon":"2.3522"}]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "visitus-test")
	p, err := client.Geocode(context.Background(), "12 rue des Vignes, 33000, Bordeaux", "")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if p.Lat != 44.8378 || p.Lon != -0.5792 {
		t.Fatalf("point = %+v, want first candidate", p)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "visitus-test")
	_, err := client.Geocode(context.Background(), "Unknown St, 00000, Nowhere", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.URL, "visitus-test")
	if _, err := client.Geocode(context.Background(), "anywhere", ""); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}

func TestBoundsOf(t *testing.T) {
	points := []Point{
		{Lat: 44.8, Lon: -0.58},
		{Lat: 48.86, Lon: 2.35},
	}

	bounds, center, ok := BoundsOf(points)
	if !ok {
		t.Fatal("expected bounds for non-empty point set")
	}
	if bounds.MinLat != 44.8 || bounds.MaxLat != 48.86 {
		t.Fatalf("lat bounds = %v", bounds)
	}
	if bounds.MinLon != -0.58 || bounds.MaxLon != 2.35 {
		t.Fatalf("lon bounds = %v", bounds)
	}
	if center.Lat <= bounds.MinLat || center.Lat >= bounds.MaxLat {
		t.Fatalf("center %v outside bounds %v", center, bounds)
	}

	if _, _, ok := BoundsOf(nil); ok {
		t.Fatal("expected no bounds for empty point set")
	}
}
