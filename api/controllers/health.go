package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness.
func HealthLive(env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Env", env)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// HealthReady pings the database, object storage, and (when configured)
// Redis. Nil checks are skipped so optional dependencies don't fail
// readiness.
func HealthReady(logg *logger.Logger, checks map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		statuses := make(map[string]string, len(checks))
		healthy := true
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Ping(ctx); err != nil {
				logg.Warn(logg.WithFields(ctx, map[string]any{
					"dependency": name,
					"error":      err.Error(),
				}), "health.check_failed")
				statuses[name] = "unreachable"
				healthy = false
				continue
			}
			statuses[name] = "ok"
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, status, statuses)
	}
}
