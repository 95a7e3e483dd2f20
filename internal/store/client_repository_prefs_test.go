package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launcherlock/answer-relay/internal/logger"
)

func newTestPrefsRepo(t *testing.T) (PrefsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return NewPrefsRepository(db, logger.Nop()), mock
}

func TestPrefsGet(t *testing.T) {
	t.Run("set key", func(t *testing.T) {
		repo, mock := newTestPrefsRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM prefs WHERE key = ?")).
			WithArgs("device_id").
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))

		value, err := repo.Get("device_id")
		require.NoError(t, err)
		assert.Equal(t, "abc", value)
	})

	t.Run("unset key returns empty without error", func(t *testing.T) {
		repo, mock := newTestPrefsRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM prefs WHERE key = ?")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		value, err := repo.Get("missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestPrefsSet(t *testing.T) {
	repo, mock := newTestPrefsRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prefs (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs("device_id", "abc").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set("device_id", "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
