package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"time-tracker/api/core"
	"time-tracker/api/pkg/res"
)

func WriteErr(w http.ResponseWriter, log *slog.Logger, err error) {
	var fe *core.FieldError
	switch {
	case errors.As(err, &fe):
		res.Error(w, fe.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrBadArguments):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, "entry not found", http.StatusNotFound)
	case errors.Is(err, core.ErrUnavailable):
		log.Warn("storage unavailable", "error", err)
		res.Error(w, core.ErrUnavailable.Error(), http.StatusServiceUnavailable)
	default:
		log.Error("request failed", "error", err)
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
