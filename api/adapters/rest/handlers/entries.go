package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"time-tracker/api/adapters/rest"
	"time-tracker/api/core"
	"time-tracker/api/pkg/res"
)

const maxBodyBytes = 1 << 20

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func NewCreateEntryHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateEntryIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		minutes, err := in.Minutes.Int64()
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		ts, err := rest.ParseTimestamp(in.Timestamp, svc.Location())
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		e, err := svc.AddEntry(ctx, core.NewEntry{
			Category:    in.Category,
			Minutes:     minutes,
			Description: in.Description,
			Timestamp:   ts,
		})
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Success(w, map[string]any{"entry": e}, http.StatusCreated)
	}
}

// NewListEntriesHandler serves both the full list and the search; the query is
// read from "search" or, for older clients, "q".
func NewListEntriesHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		search := q.Get("search")
		if search == "" {
			search = q.Get("q")
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		items, err := svc.ListEntries(ctx, core.ListEntriesFilter{Search: search})
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, items, http.StatusOK)
	}
}

func NewGetEntryHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		e, err := svc.GetEntry(ctx, id)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Json(w, e, http.StatusOK)
	}
}

func NewUpdateEntryHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.UpdateEntryIn
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		minutes, err := in.Minutes.Int64()
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		e, err := svc.UpdateEntry(ctx, id, core.EntryUpdate{
			Category:    in.Category,
			Minutes:     minutes,
			Description: in.Description,
		})
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		res.Success(w, map[string]any{"entry": e}, http.StatusOK)
	}
}

func NewDeleteAllHandler(log *slog.Logger, svc core.Entries, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		n, err := svc.DeleteAll(ctx)
		if err != nil {
			rest.WriteErr(w, log, err)
			return
		}
		log.Info("deleted all entries", "deleted", n)
		res.Success(w, map[string]any{"deleted": n}, http.StatusOK)
	}
}
