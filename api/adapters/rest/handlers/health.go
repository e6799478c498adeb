package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"time-tracker/api/core"
	"time-tracker/api/pkg/res"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func NewHealthHandler(log *slog.Logger, pingmap map[string]core.Pinger, now core.Clock, timeout time.Duration) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		out := map[string]string{}
		status := "ok"
		code := http.StatusOK

		for name, p := range pingmap {
			if err := p.Ping(ctx); err != nil {
				log.Warn("ping failed", "service", name, "error", err)
				out[name] = "down"
				status = "down"
				code = http.StatusServiceUnavailable
			} else {
				out[name] = "ok"
			}
		}

		res.Json(w, map[string]any{
			"status":   status,
			"time":     now().UTC().Format(isoMillis),
			"services": out,
		}, code)
	}
}
