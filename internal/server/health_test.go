package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk/internal/server"
)

func checkHealth(t *testing.T, backend http.Handler) (*http.Response, map[string]string) {
	t.Helper()

	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	checker := server.NewHealthChecker(backendSrv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	checker.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	resp := recorder.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	var status map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))

	return resp, status
}

func TestHealthCheck_Ok(t *testing.T) {
	t.Parallel()

	resp, status := checkHealth(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", status["backend"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	t.Parallel()

	resp, status := checkHealth(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", status["backend"])
}

func TestHealthCheck_Unreachable(t *testing.T) {
	t.Parallel()

	backendSrv := httptest.NewServer(http.NotFoundHandler())
	backendSrv.Close()

	checker := server.NewHealthChecker(backendSrv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	recorder := httptest.NewRecorder()
	checker.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	resp := recorder.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var status map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "unreachable", status["backend"])
}
