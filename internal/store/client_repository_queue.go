package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/models"
)

const pendingTable = "pending_submissions"

// queueRepository is the SQLite-backed implementation of
// [QueueRepository] over the "pending_submissions" table.
type queueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQueueRepository constructs a [QueueRepository] backed by the
// agent's local database.
func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	logger.Debug().Msg("creating queue repository")
	return &queueRepository{
		db:     db,
		logger: logger,
	}
}

// Insert implements [QueueRepository].
func (r *queueRepository) Insert(ctx context.Context, item models.PendingSubmission) (int64, error) {
	query, args, err := sq.Insert(pendingTable).
		Columns("payload_json", "retry_count", "next_retry_at_millis").
		Values(item.PayloadJSON, item.RetryCount, item.NextRetryAtMillis).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert pending submission: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}

	return id, nil
}

// FindReady implements [QueueRepository]. Rows come back in ascending
// id order, which is insertion order, so drains are FIFO.
func (r *queueRepository) FindReady(ctx context.Context, nowMillis int64, limit int) ([]models.PendingSubmission, error) {
	query, args, err := sq.Select("id", "payload_json", "retry_count", "next_retry_at_millis").
		From(pendingTable).
		Where(sq.LtOrEq{"next_retry_at_millis": nowMillis}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find-ready query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ready submissions: %w", err)
	}
	defer rows.Close()

	var items []models.PendingSubmission
	for rows.Next() {
		var item models.PendingSubmission
		if err = rows.Scan(&item.ID, &item.PayloadJSON, &item.RetryCount, &item.NextRetryAtMillis); err != nil {
			return nil, fmt.Errorf("scan pending submission: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ready submissions: %w", err)
	}

	return items, nil
}

// Update implements [QueueRepository].
func (r *queueRepository) Update(ctx context.Context, item models.PendingSubmission) error {
	query, args, err := sq.Update(pendingTable).
		Set("retry_count", item.RetryCount).
		Set("next_retry_at_millis", item.NextRetryAtMillis).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update pending submission: %w", err)
	}

	return checkAffected(res)
}

// Delete implements [QueueRepository].
func (r *queueRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := sq.Delete(pendingTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pending submission: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPendingNotFound
	}

	return nil
}
