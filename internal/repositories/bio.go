package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rdrx/internal/models"
)

type BioRepository struct {
	db *sqlx.DB
}

func NewBioRepository(db *sqlx.DB) *BioRepository {
	return &BioRepository{db: db}
}

// GetByHandle returns nil, nil for unknown handles.
func (r *BioRepository) GetByHandle(ctx context.Context, handle string) (*models.BioPageDB, error) {
	const query = `
		SELECT handle, user_id, title, description, links, created_at, updated_at
		FROM bio_pages
		WHERE handle = $1
	`

	var page models.BioPageDB
	err := r.db.GetContext(ctx, &page, query, handle)

	logQuery(query, []any{handle}, page.Handle, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Upsert creates the page or updates it when the same user already owns the handle.
// A handle owned by someone else yields ErrDuplicate.
func (r *BioRepository) Upsert(ctx context.Context, page *models.BioPageDB) error {
	const query = `
		INSERT INTO bio_pages (handle, user_id, title, description, links, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (handle) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    links = EXCLUDED.links,
		    updated_at = NOW()
		WHERE bio_pages.user_id = EXCLUDED.user_id
	`
	args := []any{page.Handle, page.UserID, page.Title, page.Description, page.Links}

	res, err := r.db.ExecContext(ctx, query, args...)
	var n int64
	if err == nil {
		n = rowsAffected(res)
	}

	logQuery(query, args, n, err)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	if n == 0 {
		return ErrDuplicate
	}
	return nil
}
