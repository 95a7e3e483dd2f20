package store

import (
	"database/sql"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/migrations"
)

// DB wraps the standard sql.DB handle together with the application
// logger. Both the relay's postgres connection and the agent's sqlite
// connection are carried in this type; the dialect only matters to the
// repository queries built on top.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// MigrateServer applies the relay's embedded postgres migrations.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the agent's embedded sqlite migrations.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}
