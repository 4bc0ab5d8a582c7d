package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UID               uuid.UUID  `json:"uid" db:"uid"`                                 // Primary key, immutable
	Name              string     `json:"name" db:"name"`                               // Display name
	Email             string     `json:"email" db:"email"`                             // Unique email
	PasswordHash      string     `json:"-" db:"password_hash"`                         // argon2id or legacy bcrypt digest
	ProfilePictureURL *string    `json:"profile_picture_url" db:"profile_picture_url"` // Set after upload
	EmailVerified     bool       `json:"email_verified" db:"email_verified"`           // Defaults to false
	ResetToken        *string    `json:"-" db:"reset_token"`                           // Pending password reset
	ResetTokenExpires *time.Time `json:"-" db:"reset_token_expires"`                   // Expiry of ResetToken
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`                   // Creation timestamp
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`                   // Last update timestamp
}

// PublicUser is the profile returned to clients. It never carries
// the password hash or reset token.
type PublicUser struct {
	UID               string    `json:"uid"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	EmailVerified     bool      `json:"email_verified"`
	CreatedAt         time.Time `json:"created_at"`
}

// Public strips the secret fields of a user.
func (u *UserDB) Public() *PublicUser {
	if u == nil {
		return nil
	}
	p := &PublicUser{
		UID:           u.UID.String(),
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
	if u.ProfilePictureURL != nil {
		p.ProfilePictureURL = *u.ProfilePictureURL
	}
	return p
}

// HasValidResetToken reports whether token matches the stored reset token
// and the token has not expired at now.
func (u *UserDB) HasValidResetToken(token string, now time.Time) bool {
	if u == nil || u.ResetToken == nil || u.ResetTokenExpires == nil || token == "" {
		return false
	}
	return *u.ResetToken == token && u.ResetTokenExpires.After(now)
}
