package database

import (
	"context"
	_ "embed"
	"strings"

	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// Statements splits the embedded schema into executable statements.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schema, ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, client Client) error {
	for _, stmt := range Statements() {
		if res := client.Run(ctx, stmt); !res.Success {
			return errors.Errorf("migrate: %s", res.Error)
		}
	}
	return nil
}
