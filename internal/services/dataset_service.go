package services

import (
	"errors"
	"fmt"
	"time"

	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/store"
)

// MergeAllOption is the synthetic dataset name for the union of all tenants.
const MergeAllOption = "all"

// ErrNoDataset means the requested dataset has no data to show. Surfaced as
// an informational notice, not a crash.
var ErrNoDataset = errors.New("no data available")

const datasetCacheTTL = 60 * time.Second

// DatasetService serves read-time snapshots: a single tenant's table or the
// merged table, cached briefly since every interaction reloads from disk.
type DatasetService struct {
	dataDir string
	tenants *config.TenantRegistry
	store   *store.Store
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewDatasetService(dataDir string, tenants *config.TenantRegistry, st *store.Store, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *DatasetService {
	return &DatasetService{
		dataDir: dataDir,
		tenants: tenants,
		store:   st,
		cache:   cache,
		metrics: metricsReg,
	}
}

func datasetKey(name string) string {
	return "dataset:" + name
}

// ListOptions returns the dataset file names in the data directory plus the
// merge-all option.
func (s *DatasetService) ListOptions() ([]string, string, error) {
	files, err := dataset.ListFiles(s.dataDir)
	if err != nil {
		return nil, "", err
	}
	return files, MergeAllOption, nil
}

// ByName resolves a dataset selector: MergeAllOption or a tenant id.
func (s *DatasetService) ByName(name string) (*dataset.Table, error) {
	if name == MergeAllOption {
		return s.Merged()
	}
	return s.Tenant(name)
}

// Tenant returns one tenant's table.
func (s *DatasetService) Tenant(tenantID string) (*dataset.Table, error) {
	return s.cached(datasetKey(tenantID), func() (*dataset.Table, error) {
		t, err := s.store.Load(tenantID)
		if err != nil {
			if errors.Is(err, store.ErrDatasetMissing) {
				return nil, fmt.Errorf("%w: %s", ErrNoDataset, tenantID)
			}
			return nil, err
		}
		return t, nil
	})
}

// Merged returns the union of every tenant file, anchor row included when
// more than one file exists.
func (s *DatasetService) Merged() (*dataset.Table, error) {
	return s.cached(datasetKey(MergeAllOption), func() (*dataset.Table, error) {
		t, err := dataset.MergeAll(s.dataDir)
		if err != nil {
			return nil, err
		}
		s.metrics.DatasetMergesTotal.Inc()
		if t.Empty() {
			return nil, ErrNoDataset
		}
		return t, nil
	})
}

// Invalidate drops the tenant's snapshot and the merged one after an append.
func (s *DatasetService) Invalidate(tenantID string) {
	s.cache.Delete(datasetKey(tenantID))
	s.cache.Delete(datasetKey(MergeAllOption))
}

// cached runs loader through the cache backend. A backend that round-trips
// values through JSON (Redis) loses the concrete type; such hits are treated
// as misses and reloaded from disk.
func (s *DatasetService) cached(key string, loader func() (*dataset.Table, error)) (*dataset.Table, error) {
	if val, found := s.cache.Get(key); found {
		if t, ok := val.(*dataset.Table); ok {
			s.metrics.CacheHitsTotal.WithLabelValues("dataset").Inc()
			return t, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues("dataset").Inc()

	t, err := loader()
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, t, datasetCacheTTL)
	return t, nil
}
