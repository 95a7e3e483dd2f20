// Package store provides the persistence layer for both halves of the
// system: the relay's security-record repository on PostgreSQL and the
// agent's retry queue and preferences on SQLite.
package store

import (
	"context"
	"fmt"

	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
)

// NewRepositories connects to the relay database, applies migrations,
// and constructs the server-side repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect relay database: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migrate relay database: %w", err)
	}

	return &Repositories{
		Security: NewSecurityRepository(db, log),
	}, nil
}

// NewClientStorages opens the agent's local database, applies
// migrations, and constructs the client-side repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migrate local database: %w", err)
	}

	return &ClientStorages{
		Queue: NewQueueRepository(db, log),
		Prefs: NewPrefsRepository(db, log),
	}, nil
}
