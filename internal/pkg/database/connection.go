package database

import (
	"log"

	"travel-service/config"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	DriverD1       = "d1"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// GetConnection returns the shim for the configured driver. The D1 driver
// goes through httpClient; the others open a local pool.
func GetConnection(cfg *config.DatabaseConfig, httpClient Doer, logger *otelzap.Logger) Client {
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
		db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
		if err != nil {
			log.Fatalf("failed to connect to %s: %v", cfg.Driver, err)
		}
		if cfg.Driver == DriverSQLite {
			db.SetMaxOpenConns(1)
		}
		return NewSQLXClient(db, logger)
	default:
		return NewD1Client(&cfg.D1, httpClient, logger)
	}
}
