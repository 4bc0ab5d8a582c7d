package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rdrx/internal/models"
)

// DeletionRepository manages the deletions queue.
type DeletionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDeletionRepository(db *sqlx.DB, txGetter TxGetter) *DeletionRepository {
	return &DeletionRepository{db: db, txGetter: txGetter}
}

// Save schedules a deletion, replacing any earlier schedule for the shortcode.
func (r *DeletionRepository) Save(ctx context.Context, d models.DeletionDB) error {
	query := `
		INSERT INTO deletions (shortcode, delete_at, is_file)
		VALUES ($1, $2, $3)
		ON CONFLICT (shortcode) DO UPDATE
		SET delete_at = EXCLUDED.delete_at, is_file = EXCLUDED.is_file
	`
	args := []any{d.Shortcode, d.DeleteAt, d.IsFile}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var n int64
	if err == nil {
		n = rowsAffected(res)
	}

	logQuery(query, args, n, err)

	return err
}

// ListDue returns the entries whose delete_at is at or before nowMs.
func (r *DeletionRepository) ListDue(ctx context.Context, nowMs int64) ([]models.DeletionDB, error) {
	const query = `
		SELECT shortcode, delete_at, is_file
		FROM deletions
		WHERE delete_at <= $1
		ORDER BY delete_at
	`

	due := []models.DeletionDB{}
	err := r.db.SelectContext(ctx, &due, query, nowMs)

	logQuery(query, []any{nowMs}, len(due), err)

	return due, err
}

// Delete removes the entry for shortcode.
func (r *DeletionRepository) Delete(ctx context.Context, shortcode string) error {
	const query = `DELETE FROM deletions WHERE shortcode = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, shortcode)
	var n int64
	if err == nil {
		n = rowsAffected(res)
	}

	logQuery(query, []any{shortcode}, n, err)

	return err
}
