package rest

import (
	"context"
	"net/http"
	"time"
)

// Checker verifies that an infrastructure dependency is reachable.
type Checker interface {
	Check(ctx context.Context) error
}

type Option func(*Server)

func WithHealthChecks(checks map[string]Checker) Option {
	return func(s *Server) { s.checks = checks }
}

type checkResult struct {
	Status string `json:"status"`
}

func (that *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	results := make(map[string]checkResult, len(that.checks))
	status := http.StatusOK

	for name, checker := range that.checks {
		if err := checker.Check(ctx); err != nil {
			that.logger.Error("health check failed", "name", name, "error", err)
			results[name] = checkResult{Status: "error"}
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = checkResult{Status: "ok"}
	}

	writeJSON(w, status, results)
}
