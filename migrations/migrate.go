// Package migrations embeds and applies the schema migrations for both
// databases: the relay's security records (PostgreSQL) and the agent's
// retry queue and preferences (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// MigrateServer applies the relay's PostgreSQL migrations.
func MigrateServer(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "server"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrateClient applies the agent's SQLite migrations.
func MigrateClient(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "client"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
