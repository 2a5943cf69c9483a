package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fullwoodjoz/visitus/internal/config"
	gormModels "fullwoodjoz/visitus/internal/models/gorm"
)

// DB is the sqlx handle for the API key store (postgres deployments only).
var DB *sqlx.DB

// OrmDB is the GORM handle for the account store.
var OrmDB *gorm.DB

// InitAccounts opens the account store with the configured driver and
// migrates the account table.
func InitAccounts(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn, err := config.PostgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.Account{}); err != nil {
		return nil, fmt.Errorf("migrate account store: %w", err)
	}

	OrmDB = db
	return db, nil
}

// InitKeys connects sqlx to the postgres API key store, retrying briefly so
// the service survives the database coming up after it.
func InitKeys(dsn string) error {
	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
