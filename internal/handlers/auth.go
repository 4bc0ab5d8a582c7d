package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Session cookie name and lifetimes in seconds.
const (
	SessionCookieName   = "auth_token"
	sessionMaxAge       = 86400
	rememberSessionAge  = 2592000
	maxPictureFormBytes = services.MaxProfilePictureSize + 1<<20
)

// Signuper creates accounts.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) (*models.AuthResult, error)
}

// Loginer authenticates users.
type Loginer interface {
	Login(ctx context.Context, email, password string, remember bool) (*models.AuthResult, error)
}

// PasswordResetter runs both steps of the password reset flow.
type PasswordResetter interface {
	RequestPasswordReset(ctx context.Context, email string) (*models.AuthResult, error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) (*models.AuthResult, error)
}

// AccountManager edits the account of a signed in user.
type AccountManager interface {
	UpdateProfile(ctx context.Context, uid uuid.UUID, name, email string) (*models.AuthResult, error)
	ChangePassword(ctx context.Context, uid uuid.UUID, current, newPassword, confirm string) (*models.AuthResult, error)
	UploadProfilePicture(ctx context.Context, uid uuid.UUID, filename string, size int64, body io.Reader) (*models.AuthResult, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// default: Alice
	Name string `json:"name"`

	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// required: true
	// default: Abcdef12
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// required: true
	// default: Abcdef12
	Password string `json:"password"`

	// Keep the session for 30 days instead of one
	Remember bool `json:"remember"`
}

// ResetPasswordRequest starts a password reset.
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ConfirmResetRequest completes a password reset.
// swagger:model ConfirmResetRequest
type ConfirmResetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ProfileRequest updates the display name and email.
// swagger:model ProfileRequest
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ChangePasswordRequest replaces the password of the signed in user.
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResponse is returned by every successful auth call.
// swagger:model AuthResponse
type AuthResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	User    *models.PublicUser `json:"user,omitempty"`
	Token   string             `json:"token,omitempty"`
}

func writeAuthResult(w http.ResponseWriter, res *models.AuthResult) {
	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: res.Message,
		User:    res.User,
		Token:   res.Token,
	})
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Create an account and start a one day session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SignupRequest true "Signup Request"
// @Success 200 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		setSessionCookie(w, res.Token, sessionMaxAge)
		writeAuthResult(w, res)
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password, req.Remember)
		if err != nil {
			writeError(w, r, err)
			return
		}

		maxAge := sessionMaxAge
		if req.Remember {
			maxAge = rememberSessionAge
		}
		setSessionCookie(w, res.Token, maxAge)
		writeAuthResult(w, res)
	}
}

// NewLogoutHandler clears the session cookie.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router /api/auth/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setSessionCookie(w, "", -1)
		writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Logged out"})
	}
}

// NewRequestResetHandler starts a password reset. The answer does not reveal
// whether the account exists.
// @Summary Request password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ResetPasswordRequest true "Email"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /api/auth/reset-password [post]
func NewRequestResetHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.RequestPasswordReset(r.Context(), req.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeAuthResult(w, res)
	}
}

// NewConfirmResetHandler sets a new password from a reset token.
// @Summary Confirm password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmResetRequest true "Token and new password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token"
// @Router /api/auth/reset-password/confirm [post]
func NewConfirmResetHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmResetRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeAuthResult(w, res)
	}
}

// NewMeHandler returns the signed in user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.AuthResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Router /api/auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := middlewares.GetAuthFromContext(r.Context())
		writeJSON(w, http.StatusOK, AuthResponse{Success: true, User: auth.User.Public()})
	}
}

// NewUpdateProfileHandler changes the name and email of the signed in user.
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ProfileRequest true "Profile"
// @Success 200 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /api/auth/profile [post]
// @Security BearerAuth
func NewUpdateProfileHandler(svc AccountManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		auth := middlewares.GetAuthFromContext(r.Context())
		res, err := svc.UpdateProfile(r.Context(), auth.User.UID, req.Name, req.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeAuthResult(w, res)
	}
}

// NewChangePasswordHandler replaces the password after re-verifying the current one.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.ChangePasswordRequest true "Passwords"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Current password is incorrect"
// @Router /api/auth/password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc AccountManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		auth := middlewares.GetAuthFromContext(r.Context())
		res, err := svc.ChangePassword(r.Context(), auth.User.UID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeAuthResult(w, res)
	}
}

// NewUploadPictureHandler stores a new profile picture from the multipart field "file".
// @Summary Upload profile picture
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "png, jpg, jpeg or webp, at most 5MB"
// @Success 200 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid file"
// @Router /api/auth/profile/picture [post]
// @Security BearerAuth
func NewUploadPictureHandler(svc AccountManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxPictureFormBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		auth := middlewares.GetAuthFromContext(r.Context())
		res, err := svc.UploadProfilePicture(r.Context(), auth.User.UID, header.Filename, header.Size, file)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeAuthResult(w, res)
	}
}
