package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"time-tracker/api/adapters/rest"
	"time-tracker/api/core"
	"time-tracker/api/pkg/res"
)

func NewStatsHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		st, err := svc.Stats(ctx)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, st, http.StatusOK)
	}
}
