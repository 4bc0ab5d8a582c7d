package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sbilibin2017/rdrx/internal/models"
)

// CookieName is the cookie carrying the session token.
const CookieName = "auth_token"

var (
	ErrNoToken      = errors.New("session token missing")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// Claims are the signed payload of a session token.
// CreatedAt and ExpiresAt mirror the session in epoch milliseconds,
// the registered iat/exp claims carry the same instants in seconds.
type Claims struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 session tokens.
type JWT struct {
	SecretKey string           // Secret key for signing tokens
	Now       func() time.Time // Time source, time.Now by default
}

// Option configures a JWT.
type Option func(*JWT)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.Now = now
	}
}

// New creates a new JWT instance
func New(secretKey string, opts ...Option) *JWT {
	j := &JWT{
		SecretKey: secretKey,
		Now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Create signs a token carrying the session.
func (j *JWT) Create(ctx context.Context, s models.Session) (string, error) {
	claims := Claims{
		UID:       s.UID,
		Email:     s.Email,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UID,
			IssuedAt:  jwt.NewNumericDate(time.UnixMilli(s.CreatedAt)),
			ExpiresAt: jwt.NewNumericDate(time.UnixMilli(s.ExpiresAt)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Verify checks structure, signature and expiry and returns the embedded session.
func (j *JWT) Verify(ctx context.Context, tokenString string) (*models.Session, error) {
	if strings.Count(tokenString, ".") != 2 {
		return nil, ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(j.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UID == "" {
		return nil, ErrInvalidToken
	}

	session := &models.Session{
		UID:       claims.UID,
		Email:     claims.Email,
		Name:      claims.Name,
		CreatedAt: claims.CreatedAt,
		ExpiresAt: claims.ExpiresAt,
	}
	if session.Expired(j.Now()) {
		return nil, ErrExpiredToken
	}

	return session, nil
}

// GetTokenFromRequest extracts the token from the Authorization header,
// falling back to the auth_token cookie. The header takes precedence.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], nil
		}
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}
