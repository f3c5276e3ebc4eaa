// Package databasetest provides a migrated in-memory SQLite client for
// repository tests.
package databasetest

import (
	"context"
	"testing"

	"travel-service/internal/pkg/database"
	log_internal "travel-service/internal/pkg/log"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

func New(t testing.TB) database.Client {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	client := database.NewSQLXClient(db, log_internal.Nop())
	if err := database.Migrate(context.Background(), client); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}
