package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/rdrx/internal/models"
)

const userColumns = `uid, name, email, password_hash, profile_picture_url, email_verified,
		reset_token, reset_token_expires, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logQuery(query, args, user.UID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns nil, nil when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.get(ctx, query, email)
}

// GetByUID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1 LIMIT 1`
	return r.get(ctx, query, uid)
}

// GetByResetToken only matches tokens whose expiry is after now.
func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE reset_token = $1 AND reset_token_expires > $2
		LIMIT 1`
	return r.get(ctx, query, token, now)
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
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

// Save inserts a new user. A taken email yields ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (uid, name, email, password_hash, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
	`
	_, err := r.exec(ctx, query, user.UID, user.Name, user.Email, user.PasswordHash)
	return err
}

// UpdateProfile changes name and email. A taken email yields ErrDuplicate.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, uid uuid.UUID, name, email string) error {
	query := `UPDATE users SET name = $1, email = $2, updated_at = NOW() WHERE uid = $3`
	n, err := r.exec(ctx, query, name, email, uid)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (r *UserWriteRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE uid = $2`
	n, err := r.exec(ctx, query, passwordHash, uid)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (r *UserWriteRepository) UpdateProfilePicture(ctx context.Context, uid uuid.UUID, url string) error {
	query := `UPDATE users SET profile_picture_url = $1, updated_at = NOW() WHERE uid = $2`
	n, err := r.exec(ctx, query, url, uid)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func (r *UserWriteRepository) SetResetToken(ctx context.Context, uid uuid.UUID, token string, expires time.Time) error {
	query := `UPDATE users SET reset_token = $1, reset_token_expires = $2, updated_at = NOW() WHERE uid = $3`
	n, err := r.exec(ctx, query, token, expires, uid)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// ResetPassword stores the new hash and clears the reset token in one statement.
// It only matches while the token is still the one that was looked up and unexpired.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, uid uuid.UUID, token, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires = NULL, updated_at = NOW()
		WHERE uid = $2 AND reset_token = $3 AND reset_token_expires > NOW()
	`
	n, err := r.exec(ctx, query, passwordHash, uid, token)
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
