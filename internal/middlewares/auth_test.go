package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rdrx/internal/models"
)

func TestSessionMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UID: uuid.New()}
	session := &models.Session{UID: user.UID.String()}

	tests := []struct {
		name      string
		mockSetup func(m *MockSessionVerifier)
		wantAuth  bool
	}{
		{
			name: "Anonymous",
			mockSetup: func(m *MockSessionVerifier) {
				m.EXPECT().VerifySession(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "Authenticated",
			mockSetup: func(m *MockSessionVerifier) {
				m.EXPECT().VerifySession(gomock.Any(), gomock.Any()).Return(user, session)
			},
			wantAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewMockSessionVerifier(ctrl)
			tt.mockSetup(verifier)

			var got models.AuthContext
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetAuthFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			SessionMiddleware(verifier)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantAuth, got.Authenticated())
			if tt.wantAuth {
				assert.Equal(t, user, got.User)
				assert.Equal(t, session, got.Session)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireSession(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["message"])

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(WithAuth(req.Context(), models.AuthContext{User: &models.UserDB{}, Session: &models.Session{}}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequireSessionOrRedirect(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	RequireSessionOrRedirect(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/create?edit=foo", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login?redirect_url=%2Fcreate%3Fedit%3Dfoo", rr.Header().Get("Location"))
}
