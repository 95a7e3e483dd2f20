package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/launcherlock/answer-relay/internal/logger"
)

const prefsTable = "prefs"

// prefsRepository is the SQLite-backed implementation of
// [PrefsRepository] over the "prefs" table.
type prefsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPrefsRepository constructs a [PrefsRepository] backed by the
// agent's local database.
func NewPrefsRepository(db *DB, logger *logger.Logger) PrefsRepository {
	logger.Debug().Msg("creating prefs repository")
	return &prefsRepository{
		db:     db,
		logger: logger,
	}
}

// Get implements [PrefsRepository]. Unset keys return "" without error.
func (r *prefsRepository) Get(key string) (string, error) {
	query, args, err := sq.Select("value").
		From(prefsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build prefs get query: %w", err)
	}

	var value string
	row := r.db.QueryRowContext(context.Background(), query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("read pref %q: %w", key, err)
	}

	return value, nil
}

// Set implements [PrefsRepository].
func (r *prefsRepository) Set(key string, value string) error {
	// sqlite upsert keyed on the primary key
	query, args, err := sq.Insert(prefsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build prefs set query: %w", err)
	}

	if _, err = r.db.ExecContext(context.Background(), query, args...); err != nil {
		return fmt.Errorf("write pref %q: %w", key, err)
	}

	return nil
}
