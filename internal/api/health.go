// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wiwekaitech/wiweka/internal/platform/respond"
)

// HealthDependencies holds the checks run by the /ready endpoint. A nil check is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(context context.Context) error
	// CheckStorage verifies the upload backend is reachable.
	CheckStorage func(context context.Context) error
}

type dependencyCheck struct {
	name  string
	check func(context.Context) error
}

func (deps HealthDependencies) checks() []dependencyCheck {
	all := []dependencyCheck{
		{name: "postgres", check: deps.CheckDatabase},
		{name: "storage", check: deps.CheckStorage},
	}

	enabled := all[:0]
	for _, p := range all {
		if p.check != nil {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	checks []dependencyCheck
	logger *slog.Logger
}

// NewHealthHandlers returns the /health liveness and /ready readiness handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checks: deps.checks(), logger: logger}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness answers 503 with status "degraded" when any dependency fails.
// Failure causes are logged, never returned.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, len(handler.checks))
	ready := true

	for _, p := range handler.checks {
		result := checkResult{Name: p.name, IsOK: true}
		if err := p.check(request.Context()); err != nil {
			result.IsOK, result.Error = false, "unreachable"
			ready = false
			handler.logger.ErrorContext(request.Context(), "readiness_check_failed",
				slog.String("dependency", p.name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	if !ready {
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{
			Success: false,
			Data:    map[string]any{"status": "degraded", "checks": results},
		})
		return
	}

	respond.OK(writer, map[string]any{"status": "ready", "checks": results})
}
