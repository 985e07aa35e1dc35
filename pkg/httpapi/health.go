package httpapi

import (
	"context"
	"net/http"
	"time"
)

type CheckStatus string

const (
	StatusUp   CheckStatus = "up"
	StatusDown CheckStatus = "down"
)

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

type HealthReport struct {
	Status CheckStatus            `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status  CheckStatus `json:"status"`
	Latency string      `json:"latency"`
	Error   string      `json:"error,omitempty"`
}

// Health runs every check with the given timeout. Any failing check turns the
// report down and the status into 503.
func Health(timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report := HealthReport{Status: StatusUp, Checks: make(map[string]CheckResult, len(checks))}
		for name, check := range checks {
			start := time.Now()
			res := CheckResult{Status: StatusUp}
			if err := check(ctx); err != nil {
				res.Status = StatusDown
				res.Error = err.Error()
				report.Status = StatusDown
			}
			res.Latency = time.Since(start).String()
			report.Checks[name] = res
		}

		status := http.StatusOK
		if report.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}
		_ = WriteJSON(w, status, report)
	}
}
