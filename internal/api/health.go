// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/mangaread/internal/platform/respond"
)

// readinessTimeout bounds all dependency checks of one /ready call.
const readinessTimeout = 3 * time.Second

// Check is one named readiness dependency.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and status probes.
type HealthHandler struct {
	checks []Check
	logger *slog.Logger
	now    func() time.Time
}

// NewHealthHandler creates the probe handlers over checks.
func NewHealthHandler(logger *slog.Logger, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger, now: time.Now}
}

// Liveness handles GET /health. It returns 200 while the process runs.
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// Status handles GET /api/health for frontends polling the API.
func (handler *HealthHandler) Status(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		"status":    "ok",
		"timestamp": handler.now().UTC().Format(time.RFC3339Nano),
	})
}

// Readiness handles GET /ready. Any failing check yields 503 "degraded".
func (handler *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
	defer cancel()

	results := make([]checkResult, 0, len(handler.checks))
	isSystemReady := true

	for _, check := range handler.checks {
		result := checkResult{Name: check.Name, IsOK: true}
		if err := check.Run(ctx); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.ErrorContext(ctx, "readiness_check_failed",
				slog.String("dependency", check.Name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK
	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.Status(writer, httpStatus, map[string]any{
		"status": responseStatus,
		"checks": results,
	})
}
