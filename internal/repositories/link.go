package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rdrx/internal/models"
)

const linkColumns = `shortcode, target_url, creator_id, is_snippet, is_file,
		password_hash, is_password_protected, created_at`

// LinkReadRepository reads short_urls.
type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetByShortcode returns nil, nil for unknown shortcodes.
func (r *LinkReadRepository) GetByShortcode(ctx context.Context, shortcode string) (*models.ShortLinkDB, error) {
	query := `SELECT ` + linkColumns + ` FROM short_urls WHERE shortcode = $1 LIMIT 1`

	var link models.ShortLinkDB
	err := r.db.GetContext(ctx, &link, query, shortcode)

	logQuery(query, []any{shortcode}, link.Shortcode, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByCreator returns the links created by uid, newest first.
func (r *LinkReadRepository) ListByCreator(ctx context.Context, uid uuid.UUID) ([]models.ShortLinkDB, error) {
	query := `SELECT ` + linkColumns + ` FROM short_urls WHERE creator_id = $1 ORDER BY created_at DESC`

	links := []models.ShortLinkDB{}
	err := r.db.SelectContext(ctx, &links, query, uid)

	logQuery(query, []any{uid}, len(links), err)

	return links, err
}

// IsTaken reports whether key is used by any link kind or bio page.
func (r *LinkReadRepository) IsTaken(ctx context.Context, key string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM short_urls WHERE shortcode IN ($1, 'c-' || $1, 'f-' || $1)
		) OR EXISTS (
			SELECT 1 FROM bio_pages WHERE handle = $1
		)
	`

	var taken bool
	err := r.db.GetContext(ctx, &taken, query, key)

	logQuery(query, []any{key}, taken, err)

	return taken, err
}

// LinkWriteRepository writes short_urls, inside the request transaction when one is bound.
type LinkWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLinkWriteRepository(db *sqlx.DB, txGetter TxGetter) *LinkWriteRepository {
	return &LinkWriteRepository{db: db, txGetter: txGetter}
}

func (r *LinkWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var n int64
	if err == nil {
		n = rowsAffected(res)
	}

	logQuery(query, args, n, err)

	if isUniqueViolation(err) {
		return 0, ErrDuplicate
	}
	return n, err
}

// Save inserts a link. A taken shortcode yields ErrDuplicate.
func (r *LinkWriteRepository) Save(ctx context.Context, link *models.ShortLinkDB) error {
	query := `
		INSERT INTO short_urls (shortcode, target_url, creator_id, is_snippet, is_file,
			password_hash, is_password_protected, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.exec(ctx, query, link.Shortcode, link.TargetURL, link.CreatorID,
		link.IsSnippet, link.IsFile, link.PasswordHash, link.IsPasswordProtected)
	return err
}

// Overwrite inserts a link or replaces the existing row with the same shortcode.
func (r *LinkWriteRepository) Overwrite(ctx context.Context, link *models.ShortLinkDB) error {
	query := `
		INSERT INTO short_urls (shortcode, target_url, creator_id, is_snippet, is_file,
			password_hash, is_password_protected, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (shortcode) DO UPDATE
		SET target_url = EXCLUDED.target_url,
		    creator_id = EXCLUDED.creator_id,
		    is_snippet = EXCLUDED.is_snippet,
		    is_file = EXCLUDED.is_file,
		    password_hash = EXCLUDED.password_hash,
		    is_password_protected = EXCLUDED.is_password_protected
	`
	_, err := r.exec(ctx, query, link.Shortcode, link.TargetURL, link.CreatorID,
		link.IsSnippet, link.IsFile, link.PasswordHash, link.IsPasswordProtected)
	return err
}

// UpdateTarget replaces the stored target. Unknown shortcodes yield sql.ErrNoRows.
func (r *LinkWriteRepository) UpdateTarget(ctx context.Context, shortcode, target string) error {
	query := `UPDATE short_urls SET target_url = $1 WHERE shortcode = $2`
	n, err := r.exec(ctx, query, target, shortcode)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// Delete removes a link. Deleting an unknown shortcode is not an error.
func (r *LinkWriteRepository) Delete(ctx context.Context, shortcode string) error {
	query := `DELETE FROM short_urls WHERE shortcode = $1`
	_, err := r.exec(ctx, query, shortcode)
	return err
}
