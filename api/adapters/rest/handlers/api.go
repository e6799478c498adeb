package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"time-tracker/api/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, deps core.Deps, timeout time.Duration) {
	svc := deps.Entries

	// health
	mux.Handle("GET /api/health", NewHealthHandler(log, map[string]core.Pinger{"db": svc}, deps.Now, timeout))

	// entries
	mux.Handle("POST /api/entries", NewCreateEntryHandler(log, svc, timeout))
	mux.Handle("GET /api/entries", NewListEntriesHandler(log, svc, timeout))
	mux.Handle("GET /api/entries/{id}", NewGetEntryHandler(log, svc, timeout))
	mux.Handle("PUT /api/entries/{id}", NewUpdateEntryHandler(log, svc, timeout))
	mux.Handle("POST /api/entries:delete-all", NewDeleteAllHandler(log, svc, timeout))

	// stats
	mux.Handle("GET /api/stats", NewStatsHandler(log, svc, timeout))

	// routes of the first backend, still used by older clients
	mux.Handle("POST /api/add", NewCreateEntryHandler(log, svc, timeout))
	mux.Handle("GET /api/entries_filter", NewListEntriesHandler(log, svc, timeout))
	mux.Handle("PUT /api/update/{id}", NewUpdateEntryHandler(log, svc, timeout))
	mux.Handle("POST /api/delete_all", NewDeleteAllHandler(log, svc, timeout))
}
