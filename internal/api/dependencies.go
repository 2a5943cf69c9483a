package api

import (
	"fullwoodjoz/visitus/internal/auth"
	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/constants"
	"fullwoodjoz/visitus/internal/db"
	"fullwoodjoz/visitus/internal/db/repositories"
	"fullwoodjoz/visitus/internal/geo"
	"fullwoodjoz/visitus/internal/logging"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/services"
	"fullwoodjoz/visitus/internal/store"
)

type Repositories struct {
	Accounts *repositories.AccountRepository
	Keys     *repositories.KeysRepo
}

type Services struct {
	Cache    common.CacheInterface
	Sessions *common.SessionService
	Postal   *geo.PostalClient
	Auth     *services.AuthService
	Visits   *services.VisitService
	Datasets *services.DatasetService
}

type Dependencies struct {
	Cfg      *config.Config
	Tenants  *config.TenantRegistry
	Store    *store.Store
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	tenants, err := config.LoadTenants(cfg.TenantsFile)
	if err != nil {
		return nil, err
	}

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		cache, err = common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		logging.Info("Cache backend: redis")
	} else {
		cache = common.NewCacheService(60, 600)
		logging.Info("Cache backend: in-memory")
	}

	ormDB, err := db.InitAccounts(cfg)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Accounts: repositories.NewAccountRepository(ormDB),
	}

	// The API key surface only exists where postgres is configured.
	if dsn, dsnErr := config.PostgresDSN(); dsnErr == nil {
		if err := db.InitKeys(dsn); err != nil {
			return nil, err
		}
		repos.Keys = repositories.NewApiKeysRepo(db.DB)
		logging.Info("API key store connected")
	} else {
		logging.Info("API key store disabled", "reason", dsnErr.Error())
	}

	st := store.NewStore(cfg.DataDir, tenants)
	geocoder := geo.NewNominatimClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent)
	postal := geo.NewPostalClient(cfg.PostalBaseURL)

	sessions := common.NewSessionService(cache)
	datasetSvc := services.NewDatasetService(cfg.DataDir, tenants, st, cache, metricsReg)
	visitSvc := services.NewVisitService(st, geocoder, tenants, datasetSvc, cache, metricsReg)

	secret := []byte(cfg.JWTSecret)
	authSvc := services.NewAuthService(repos.Accounts, sessions, func(userID, username, tenantID, role string) (string, error) {
		return auth.IssueToken(secret, userID, username, tenantID, constants.Role(role))
	})

	return &Dependencies{
		Cfg:     cfg,
		Tenants: tenants,
		Store:   st,
		Repo:    repos,
		Services: &Services{
			Cache:    cache,
			Sessions: sessions,
			Postal:   postal,
			Auth:     authSvc,
			Visits:   visitSvc,
			Datasets: datasetSvc,
		},
		Metrics: metricsReg,
	}, nil
}
