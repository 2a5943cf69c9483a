package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/geo"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/store"
)

var (
	metricsOnce sync.Once
	metricsReg  *metrics.MetricsRegistry
)

// testMetrics returns a process-wide registry; promauto registers against
// the default Prometheus registry, so building a second one panics.
func testMetrics() *metrics.MetricsRegistry {
	metricsOnce.Do(func() {
		metricsReg = metrics.NewMetricsRegistry()
	})
	return metricsReg
}

func testTenants() *config.TenantRegistry {
	return config.NewTenantRegistry([]config.Tenant{
		{ID: "fjm", Name: "FJM", DatasetFile: "visitors_fjm.csv", Submitters: []string{"Yann", "Marine"}},
	})
}

const canonicalHeader = "date;sales;farm;name;address;zip;dept;city;mobile;cows;eqt;brand;product;lat;lon\n"

// newTestEnv provisions a data dir with an empty tenant file and wires the
// store, cache and dataset service around it.
func newTestEnv(t *testing.T) (string, *store.Store, *DatasetService) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "visitors_fjm.csv"), []byte(canonicalHeader), 0o644); err != nil {
		t.Fatal(err)
	}

	tenants := testTenants()
	st := store.NewStore(dir, tenants)
	cache := common.NewCacheService(60, 120)
	datasets := NewDatasetService(dir, tenants, st, cache, testMetrics())
	return dir, st, datasets
}

// stubGeocoder implements geo.Geocoder with a swappable func field, counting
// calls so caching behavior can be asserted.
type stubGeocoder struct {
	calls int
	fn    func(ctx context.Context, address, country string) (geo.Point, error)
}

func (g *stubGeocoder) Geocode(ctx context.Context, address, country string) (geo.Point, error) {
	g.calls++
	return g.fn(ctx, address, country)
}

func countDataRows(t *testing.T, path string) int {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	return len(lines) - 1
}
