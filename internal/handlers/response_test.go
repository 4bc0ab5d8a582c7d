package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/services"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{name: "validation", err: &services.Failure{Kind: services.ErrValidation, Message: "bad"}, expectedCode: http.StatusBadRequest, expectedMessage: "bad"},
		{name: "unauthorized", err: &services.Failure{Kind: services.ErrUnauthorized, Message: "who"}, expectedCode: http.StatusUnauthorized, expectedMessage: "who"},
		{name: "forbidden", err: &services.Failure{Kind: services.ErrForbidden, Message: "no"}, expectedCode: http.StatusForbidden, expectedMessage: "no"},
		{name: "not found", err: &services.Failure{Kind: services.ErrNotFound, Message: "gone"}, expectedCode: http.StatusNotFound, expectedMessage: "gone"},
		{name: "conflict", err: &services.Failure{Kind: services.ErrConflict, Message: "taken"}, expectedCode: http.StatusConflict, expectedMessage: "taken"},
		{name: "wrapped failure", err: fmt.Errorf("create: %w", &services.Failure{Kind: services.ErrConflict, Message: "taken"}), expectedCode: http.StatusConflict, expectedMessage: "taken"},
		{name: "unknown kind", err: &services.Failure{Kind: errors.New("other"), Message: "secret detail"}, expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		{name: "internal", err: errors.New("pq: connection refused"), expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			body := decodeBody(t, rr)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestWriteError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = old })

	handler := middlewares.LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.New("boom"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/links", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, rr.Header().Get("X-Request-ID"), fields["request_id"])
	assert.Equal(t, "/api/links", fields["path"])
}
