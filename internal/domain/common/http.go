package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// HTTPStatus maps domain sentinel errors to status codes. Anything
// unrecognized is an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrMissingMapping),
		errors.Is(err, ErrMappingFormat),
		errors.Is(err, ErrMissingSales),
		errors.Is(err, ErrTooManyFiles),
		errors.Is(err, ErrNoTransactions),
		errors.Is(err, ErrSchemaMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error body with its mapped status.
func WriteError(logger *slog.Logger, w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", slog.Any("error", err))
	}
	WriteJSON(logger, w, status, map[string]string{"error": err.Error()})
}
