package config

import (
	"fmt"
	"os"
)

// Config holds runtime settings read from the environment. Tenant-level
// settings live in the tenant registry file (see tenants.go).
type Config struct {
	AppEnv      string
	Port        string
	DataDir     string
	TenantsFile string

	// Account store. Driver is "sqlite" or "postgres".
	DBDriver string
	DBDSN    string

	// Cache backend is "memory" or "redis".
	CacheBackend string

	GeocoderBaseURL   string
	GeocoderUserAgent string
	PostalBaseURL     string

	JWTSecret string
}

func Load() *Config {
	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		TenantsFile: getEnv("TENANTS_FILE", "./config/tenants.yaml"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "./data/visitus.db"),

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),

		GeocoderBaseURL:   getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "visitus"),
		PostalBaseURL:     getEnv("POSTAL_BASE_URL", "https://geo.api.gouv.fr"),

		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

// PostgresDSN assembles the DSN for the API key store from the PG_* variables.
// An error means the key surface is not configured for this deployment.
func PostgresDSN() (string, error) {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	if host == "" || port == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("postgres not configured (PG_HOST/PG_PORT/PG_USER/PG_DB)")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
