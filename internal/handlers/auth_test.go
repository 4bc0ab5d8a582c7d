package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/models"
	"github.com/sbilibin2017/rdrx/internal/services"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewReader([]byte(s))
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func withUser(r *http.Request, user *models.UserDB) *http.Request {
	ctx := middlewares.WithAuth(r.Context(), models.AuthContext{
		User:    user,
		Session: &models.Session{UID: user.UID.String()},
	})
	return r.WithContext(ctx)
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSignuper(ctrl)

	tests := []struct {
		name            string
		inputBody       any
		mockSetup       func()
		expectedCode    int
		expectedMessage string
		expectCookie    bool
	}{
		{
			name:      "success",
			inputBody: SignupRequest{Name: "A", Email: "a@example.com", Password: "Abcdef12"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "A", "a@example.com", "Abcdef12").
					Return(&models.AuthResult{
						Message: "Account created successfully",
						User:    &models.PublicUser{Email: "a@example.com"},
						Token:   "TOKEN",
					}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Account created successfully",
			expectCookie:    true,
		},
		{
			name:            "invalid JSON",
			inputBody:       "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:      "validation failure",
			inputBody: SignupRequest{Name: "A", Email: "bad", Password: "Abcdef12"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "A", "bad", "Abcdef12").
					Return(nil, &services.Failure{Kind: services.ErrValidation, Message: "Invalid email address"})
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid email address",
		},
		{
			name:      "email taken",
			inputBody: SignupRequest{Name: "A", Email: "a@example.com", Password: "Abcdef12"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "A", "a@example.com", "Abcdef12").
					Return(nil, &services.Failure{Kind: services.ErrConflict, Message: "An account with this email already exists"})
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "An account with this email already exists",
		},
		{
			name:      "internal error",
			inputBody: SignupRequest{Name: "A", Email: "a@example.com", Password: "Abcdef12"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Signup(gomock.Any(), "A", "a@example.com", "Abcdef12").
					Return(nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", jsonBody(t, tt.inputBody))
			rr := httptest.NewRecorder()

			NewSignupHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, tt.expectedMessage, body["message"])
			assert.Equal(t, tt.expectedCode == http.StatusOK, body["success"])

			cookie := sessionCookie(rr)
			if !tt.expectCookie {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, "TOKEN", cookie.Value)
			assert.Equal(t, 86400, cookie.MaxAge)
			assert.True(t, cookie.HttpOnly)
			assert.True(t, cookie.Secure)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
			assert.Equal(t, "TOKEN", body["token"])
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name           string
		inputBody      any
		mockSetup      func()
		expectedCode   int
		expectedMaxAge int
	}{
		{
			name:      "one day session",
			inputBody: LoginRequest{Email: "a@example.com", Password: "Abcdef12"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "a@example.com", "Abcdef12", false).
					Return(&models.AuthResult{Token: "T1"}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedMaxAge: 86400,
		},
		{
			name:      "remember me",
			inputBody: LoginRequest{Email: "a@example.com", Password: "Abcdef12", Remember: true},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "a@example.com", "Abcdef12", true).
					Return(&models.AuthResult{Token: "T2"}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedMaxAge: 2592000,
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Email: "a@example.com", Password: "nope"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "a@example.com", "nope", false).
					Return(nil, &services.Failure{Kind: services.ErrUnauthorized, Message: "Invalid email or password"})
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, tt.inputBody))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			cookie := sessionCookie(rr)
			if tt.expectedMaxAge == 0 {
				assert.Nil(t, cookie)
				assert.Equal(t, "Invalid email or password", decodeBody(t, rr)["message"])
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, tt.expectedMaxAge, cookie.MaxAge)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewLogoutHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "auth_token=;")
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestPasswordResetHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)

	mockSvc.EXPECT().
		RequestPasswordReset(gomock.Any(), "a@example.com").
		Return(&models.AuthResult{Message: "If an account exists for this email, a reset link has been sent"}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", jsonBody(t, ResetPasswordRequest{Email: "a@example.com"}))
	NewRequestResetHandler(mockSvc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, decodeBody(t, rr)["success"])

	mockSvc.EXPECT().
		ConfirmPasswordReset(gomock.Any(), "tok", "Newpass12").
		Return(nil, &services.Failure{Kind: services.ErrValidation, Message: "Invalid or expired reset token"})

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/reset-password/confirm", jsonBody(t, ConfirmResetRequest{Token: "tok", NewPassword: "Newpass12"}))
	NewConfirmResetHandler(mockSvc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid or expired reset token", decodeBody(t, rr)["message"])
}

func TestAccountHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountManager(ctrl)
	user := &models.UserDB{UID: uuid.New(), Name: "A", Email: "a@example.com"}

	t.Run("me", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler().ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), user))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, "a@example.com", body["user"].(map[string]any)["email"])
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("profile", func(t *testing.T) {
		mockSvc.EXPECT().
			UpdateProfile(gomock.Any(), user.UID, "B", "b@example.com").
			Return(&models.AuthResult{Message: "Profile updated successfully", User: &models.PublicUser{Name: "B"}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/profile", jsonBody(t, ProfileRequest{Name: "B", Email: "b@example.com"}))
		rr := httptest.NewRecorder()
		NewUpdateProfileHandler(mockSvc).ServeHTTP(rr, withUser(req, user))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Profile updated successfully", decodeBody(t, rr)["message"])
	})

	t.Run("password", func(t *testing.T) {
		mockSvc.EXPECT().
			ChangePassword(gomock.Any(), user.UID, "Oldpass12", "Newpass12", "Newpass12").
			Return(nil, &services.Failure{Kind: services.ErrUnauthorized, Message: "Current password is incorrect"})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/password", jsonBody(t, ChangePasswordRequest{
			CurrentPassword: "Oldpass12",
			NewPassword:     "Newpass12",
			ConfirmPassword: "Newpass12",
		}))
		rr := httptest.NewRecorder()
		NewChangePasswordHandler(mockSvc).ServeHTTP(rr, withUser(req, user))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Current password is incorrect", decodeBody(t, rr)["message"])
	})

	t.Run("picture", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "me.png")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("png-bytes"))
		require.NoError(t, mw.Close())

		mockSvc.EXPECT().
			UploadProfilePicture(gomock.Any(), user.UID, "me.png", int64(len("png-bytes")), gomock.Any()).
			Return(&models.AuthResult{Message: "Profile picture updated successfully"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/picture", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		NewUploadPictureHandler(mockSvc).ServeHTTP(rr, withUser(req, user))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("picture missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/picture", nil)
		rr := httptest.NewRecorder()
		NewUploadPictureHandler(mockSvc).ServeHTTP(rr, withUser(req, user))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No file uploaded", decodeBody(t, rr)["message"])
	})
}
