package workers

import (
	"golang.org/x/sync/errgroup"

	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/logging"
	"fullwoodjoz/visitus/internal/services"
)

// WarmDatasetCache preloads every tenant table plus the merged one. Failures
// are logged and skipped; a cold cache just falls through to disk reads.
func WarmDatasetCache(tenants *config.TenantRegistry, datasets *services.DatasetService) {
	var g errgroup.Group
	g.SetLimit(4)

	for _, t := range tenants.All() {
		tenantID := t.ID
		g.Go(func() error {
			if _, err := datasets.Tenant(tenantID); err != nil {
				logging.Warn("Dataset warmup skipped", "tenant", tenantID, "error", err.Error())
			}
			return nil
		})
	}
	g.Go(func() error {
		if _, err := datasets.Merged(); err != nil {
			logging.Warn("Merged dataset warmup skipped", "error", err.Error())
		}
		return nil
	})

	_ = g.Wait()
	logging.Info("Dataset cache warmup finished", "tenants", len(tenants.All()))
}
