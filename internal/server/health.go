package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker reports whether the backend REST service is reachable. The
// console holds no state of its own, so backend reachability is the only
// dependency worth probing.
type HealthChecker struct {
	backendURL string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(backendURL string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		backendURL: backendURL,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	resp, err := h.httpClient.Head(h.backendURL) //nolint:noctx // ctx is overhead for this healthcheck
	switch {
	case err != nil:
		status["backend"] = "unreachable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(
			req.Context(),
			"Health check failed: backend unreachable",
			"host",
			h.backendURL,
			"error",
			err,
		)
	case resp.StatusCode >= http.StatusInternalServerError:
		status["backend"] = "degraded"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(
			req.Context(),
			"Health check failed: backend returned error status",
			"host",
			h.backendURL,
			"status_code",
			resp.StatusCode,
		)
	default:
		status["backend"] = "ok"
	}
	if resp != nil {
		if err = resp.Body.Close(); err != nil {
			h.log.WarnContext(req.Context(), "Failed to close response body", "error", err)
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
