package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestLookupCityNamesBadLength(t *testing.T) {
	client := NewPostalClient("http://unused.invalid")

	for _, code := range []string{"", "123", "123456"} {
		cities, err := client.LookupCityNames(context.Background(), code)
		if err != nil {
			t.Fatalf("code %q: unexpected error %v", code, err)
		}
		if len(cities) != 1 || cities[0] != BadPostalCodeMarker {
			t.Fatalf("code %q: got %v, want single marker element", code, cities)
		}
	}
}

func TestLookupCityNamesPassThroughOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("codePostal"); got != "33520" {
			t.Errorf("codePostal = %q, want 33520", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"nom":"Bruges"},{"nom":"Le Bouscat"},{"nom":"Bordeaux"}]`))
	}))
	defer srv.Close()

	client := NewPostalClient(srv.URL)
	cities, err := client.LookupCityNames(context.Background(), "33520")
	if err != nil {
		t.Fatalf("LookupCityNames: %v", err)
	}

	want := []string{"Bruges", "Le Bouscat", "Bordeaux"}
	if !reflect.DeepEqual(cities, want) {
		t.Fatalf("cities = %v, want upstream order %v", cities, want)
	}
}

func TestLookupCityNamesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewPostalClient(srv.URL)
	cities, err := client.LookupCityNames(context.Background(), "99999")
	if err != nil {
		t.Fatalf("LookupCityNames: %v", err)
	}
	if len(cities) != 0 {
		t.Fatalf("expected empty list for unknown code, got %v", cities)
	}
}

func TestLookupCityNamesUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewPostalClient(srv.URL)
	if _, err := client.LookupCityNames(context.Background(), "33520"); err == nil {
		t.Fatal("expected hard error on upstream failure")
	}
}
