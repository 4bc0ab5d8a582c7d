package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/password"
	"github.com/sbilibin2017/rdrx/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Session lifetimes.
const (
	SessionTTL         = 24 * time.Hour
	RememberSessionTTL = 30 * 24 * time.Hour
	ResetTokenTTL      = time.Hour

	MaxProfilePictureSize = 5 << 20
)

const invalidCredentials = "Invalid email or password"

// dummyDigest is verified against when the email is unknown so that both
// login failures do the same amount of work.
const dummyDigest = "$argon2id$v=19$m=65536,t=1,p=4$c29tZXNhbHRzb21lc2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

var profilePictureTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUID(ctx context.Context, uid uuid.UUID) (*models.UserDB, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	UpdateProfile(ctx context.Context, uid uuid.UUID, name, email string) error
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	UpdateProfilePicture(ctx context.Context, uid uuid.UUID, url string) error
	SetResetToken(ctx context.Context, uid uuid.UUID, token string, expires time.Time) error
	ResetPassword(ctx context.Context, uid uuid.UUID, token, passwordHash string) error
}

// Tokener issues and verifies session tokens.
type Tokener interface {
	Create(ctx context.Context, s models.Session) (string, error)
	Verify(ctx context.Context, token string) (*models.Session, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Mailer sends transactional mail.
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendPasswordReset(ctx context.Context, email, name, token string) error
}

// ObjectPutter stores an object and returns its public URL.
type ObjectPutter interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// AuthService handles accounts and sessions.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	tokens  Tokener
	mailer  Mailer
	objects ObjectPutter
	now     func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens Tokener, mailer Mailer, objects ObjectPutter) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		tokens:  tokens,
		mailer:  mailer,
		objects: objects,
		now:     time.Now,
	}
}

// WithClock replaces the time source.
func (svc *AuthService) WithClock(now func() time.Time) *AuthService {
	svc.now = now
	return svc
}

type signupInput struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email_shape,max=255"`
	Password string `validate:"required,strong_password"`
}

// Signup registers a user and opens a 24h session.
func (svc *AuthService) Signup(ctx context.Context, name, email, pass string) (*models.AuthResult, error) {
	in := signupInput{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: pass,
	}
	if err := validateInput(in, "Name, email and password are required"); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, fail(ErrConflict, "An account with this email already exists")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := svc.now()
	user := &models.UserDB{
		UID:          uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fail(ErrConflict, "An account with this email already exists")
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	if err := svc.mailer.SendWelcome(ctx, user.Email, user.Name); err != nil {
		logger.Log.Warnw("failed to send welcome mail", "email", user.Email, "err", err)
	}

	token, err := svc.issue(ctx, user, SessionTTL)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{
		Message: "Account created successfully",
		User:    user.Public(),
		Token:   token,
	}, nil
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Login authenticates a user. Unknown email and wrong password fail identically.
func (svc *AuthService) Login(ctx context.Context, email, pass string, remember bool) (*models.AuthResult, error) {
	in := loginInput{Email: normalizeEmail(email), Password: pass}
	if err := validateInput(in, "Email and password are required"); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		password.Verify(in.Password, dummyDigest)
		logger.Log.Infow("login failed", "reason", "unknown email")
		return nil, fail(ErrUnauthorized, invalidCredentials)
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		logger.Log.Infow("login failed", "reason", "wrong password", "uid", user.UID)
		return nil, fail(ErrUnauthorized, invalidCredentials)
	}

	ttl := SessionTTL
	if remember {
		ttl = RememberSessionTTL
	}
	token, err := svc.issue(ctx, user, ttl)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{
		Message: "Login successful",
		User:    user.Public(),
		Token:   token,
	}, nil
}

const resetRequestedMessage = "If an account exists for this email, a reset link has been sent"

type resetRequestInput struct {
	Email string `validate:"required,email_shape"`
}

// RequestPasswordReset answers the same way whether or not the account exists.
// For existing accounts a failure to send the reset mail fails the call.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) (*models.AuthResult, error) {
	in := resetRequestInput{Email: normalizeEmail(email)}
	if err := validateInput(in, "Email is required"); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return &models.AuthResult{Message: resetRequestedMessage}, nil
	}

	token, err := password.GenerateResetToken()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return nil, err
	}
	if err := svc.writer.SetResetToken(ctx, user.UID, token, svc.now().Add(ResetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "uid", user.UID, "err", err)
		return nil, err
	}
	if err := svc.mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		logger.Log.Errorw("failed to send reset mail", "uid", user.UID, "err", err)
		return nil, fmt.Errorf("send reset mail: %w", err)
	}

	return &models.AuthResult{Message: resetRequestedMessage}, nil
}

type resetConfirmInput struct {
	Token       string `validate:"required"`
	NewPassword string `validate:"required,strong_password"`
}

// ConfirmPasswordReset sets a new password for the holder of an unexpired reset token.
func (svc *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (*models.AuthResult, error) {
	in := resetConfirmInput{Token: strings.TrimSpace(token), NewPassword: newPassword}
	if err := validateInput(in, "Token and new password are required"); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByResetToken(ctx, in.Token, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to get user by reset token", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fail(ErrNotFound, "Invalid or expired reset token")
	}

	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	if err := svc.writer.ResetPassword(ctx, user.UID, in.Token, hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fail(ErrNotFound, "Invalid or expired reset token")
		}
		logger.Log.Errorw("failed to reset password", "uid", user.UID, "err", err)
		return nil, err
	}

	return &models.AuthResult{Message: "Password has been reset successfully"}, nil
}

// VerifySession resolves the request's token to a user. Any failure yields nil, nil.
// The user is reloaded so that a changed or removed account invalidates the session.
func (svc *AuthService) VerifySession(ctx context.Context, r *http.Request) (*models.UserDB, *models.Session) {
	token, err := svc.tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, nil
	}
	session, err := svc.tokens.Verify(ctx, token)
	if err != nil {
		logger.Log.Debugw("invalid session token", "err", err)
		return nil, nil
	}
	uid, err := session.UserID()
	if err != nil {
		return nil, nil
	}
	user, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "uid", uid, "err", err)
		return nil, nil
	}
	if user == nil {
		return nil, nil
	}
	return user, session
}

type profileInput struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email_shape,max=255"`
}

// UpdateProfile changes name and email of uid.
func (svc *AuthService) UpdateProfile(ctx context.Context, uid uuid.UUID, name, email string) (*models.AuthResult, error) {
	in := profileInput{Name: strings.TrimSpace(name), Email: normalizeEmail(email)}
	if err := validateInput(in, "Name and email are required"); err != nil {
		return nil, err
	}

	other, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if other != nil && other.UID != uid {
		return nil, fail(ErrConflict, "An account with this email already exists")
	}

	if err := svc.writer.UpdateProfile(ctx, uid, in.Name, in.Email); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, fail(ErrConflict, "An account with this email already exists")
		case errors.Is(err, sql.ErrNoRows):
			return nil, fail(ErrNotFound, "User not found")
		}
		logger.Log.Errorw("failed to update profile", "uid", uid, "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Message: "Profile updated successfully", User: user.Public()}, nil
}

type changePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,strong_password"`
	ConfirmPassword string `validate:"required"`
}

// ChangePassword replaces the password of uid after re-verifying the current one.
func (svc *AuthService) ChangePassword(ctx context.Context, uid uuid.UUID, current, newPassword, confirm string) (*models.AuthResult, error) {
	in := changePasswordInput{CurrentPassword: current, NewPassword: newPassword, ConfirmPassword: confirm}
	if err := validateInput(in, "All password fields are required"); err != nil {
		return nil, err
	}
	if in.NewPassword != in.ConfirmPassword {
		return nil, fail(ErrValidation, "New passwords do not match")
	}

	user, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get user", "uid", uid, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, fail(ErrNotFound, "User not found")
	}
	if !password.Verify(in.CurrentPassword, user.PasswordHash) {
		return nil, fail(ErrUnauthorized, "Current password is incorrect")
	}

	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := svc.writer.UpdatePassword(ctx, uid, hash); err != nil {
		logger.Log.Errorw("failed to update password", "uid", uid, "err", err)
		return nil, err
	}

	return &models.AuthResult{Message: "Password changed successfully"}, nil
}

// UploadProfilePicture stores a png/jpg/jpeg/webp image of at most 5 MiB
// at profile-pictures/<uid>.<ext>.
func (svc *AuthService) UploadProfilePicture(ctx context.Context, uid uuid.UUID, filename string, size int64, body io.Reader) (*models.AuthResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	contentType, ok := profilePictureTypes[ext]
	if !ok {
		return nil, fail(ErrValidation, "Invalid file type. Allowed types: png, jpg, jpeg, webp")
	}
	if size > MaxProfilePictureSize {
		return nil, fail(ErrValidation, "File too large. Maximum size is 5MB")
	}

	key := fmt.Sprintf("profile-pictures/%s.%s", uid, ext)
	url, err := svc.objects.Put(ctx, key, body, size, contentType)
	if err != nil {
		logger.Log.Errorw("failed to store profile picture", "uid", uid, "err", err)
		return nil, err
	}

	url = fmt.Sprintf("%s?v=%d", url, svc.now().UnixMilli())
	if err := svc.writer.UpdateProfilePicture(ctx, uid, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fail(ErrNotFound, "User not found")
		}
		logger.Log.Errorw("failed to update profile picture", "uid", uid, "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &models.AuthResult{Message: "Profile picture updated successfully", User: user.Public()}, nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB, ttl time.Duration) (string, error) {
	token, err := svc.tokens.Create(ctx, models.NewSession(user, svc.now(), ttl))
	if err != nil {
		logger.Log.Errorw("failed to create session token", "err", err)
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
