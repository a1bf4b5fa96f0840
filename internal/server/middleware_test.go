package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk/internal/server"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	handler := server.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = server.GetRequestID(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-Id"))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	var seen string
	handler := server.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = server.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "upstream-id")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", recorder.Header().Get("X-Request-Id"))
}

func TestGetRequestID_EmptyWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, server.GetRequestID(req.Context()))
}
