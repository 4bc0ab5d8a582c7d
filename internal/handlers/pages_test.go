package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/create", want: "/create"},
		{in: "/create?edit=foo", want: "/create?edit=foo"},
		{in: "", want: "/"},
		{in: "https://evil.test", want: "/"},
		{in: "//evil.test", want: "/"},
		{in: "/\\evil.test", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, safeRedirect(tt.in))
		})
	}
}

func TestPageHandlers(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		target   string
		contains string
	}{
		{name: "login", handler: NewLoginPageHandler(pages), target: "/login?redirect_url=%2Fupload", contains: `data-redirect="/upload"`},
		{name: "login offsite redirect", handler: NewLoginPageHandler(pages), target: "/login?redirect_url=https://evil.test", contains: `data-redirect="/"`},
		{name: "signup", handler: NewSignupPageHandler(pages), target: "/signup", contains: "/api/auth/signup"},
		{name: "reset request", handler: NewResetPageHandler(pages), target: "/reset-password", contains: "/api/auth/reset-password"},
		{name: "reset confirm", handler: NewResetPageHandler(pages), target: "/reset-password?token=abc", contains: `value="abc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestPages_UnknownPage(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	pages.Render(rr, http.StatusOK, "missing", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
