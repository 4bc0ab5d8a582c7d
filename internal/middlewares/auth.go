package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/rdrx/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// SessionVerifier resolves the session of a request. Both results are nil
// for anonymous requests.
type SessionVerifier interface {
	VerifySession(ctx context.Context, r *http.Request) (*models.UserDB, *models.Session)
}

type authKey struct{}

// SessionMiddleware verifies the request's session once and stores the
// resulting AuthContext in the request context. It never rejects a request.
func SessionMiddleware(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, session := verifier.VerifySession(r.Context(), r)
			ctx := WithAuth(r.Context(), models.AuthContext{User: user, Session: session})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithAuth returns a copy of ctx carrying auth.
func WithAuth(ctx context.Context, auth models.AuthContext) context.Context {
	return context.WithValue(ctx, authKey{}, auth)
}

// GetAuthFromContext returns the AuthContext of the request, which is
// anonymous when SessionMiddleware did not run.
func GetAuthFromContext(ctx context.Context) models.AuthContext {
	auth, _ := ctx.Value(authKey{}).(models.AuthContext)
	return auth
}

// RequireSession answers 401 to anonymous API requests.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetAuthFromContext(r.Context()).Authenticated() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSessionOrRedirect sends anonymous page requests to the login page
// with a redirect_url back to the requested path.
func RequireSessionOrRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetAuthFromContext(r.Context()).Authenticated() {
			http.Redirect(w, r, LoginRedirect(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoginRedirect is the login URL returning to target after login.
func LoginRedirect(target string) string {
	return "/login?redirect_url=" + url.QueryEscape(target)
}
