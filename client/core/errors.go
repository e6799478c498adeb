package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("server unavailable")
	ErrServer      = errors.New("server error")

	ErrCategoryRequired = errors.New("category is required")
	ErrMinutesRequired  = errors.New("minutes are required")
)

// APIError carries the server's message and matches the sentinel for its status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusServiceUnavailable:
		return ErrUnavailable
	case e.Status >= 400 && e.Status < 500:
		return ErrBadRequest
	default:
		return ErrServer
	}
}
