package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jrocha/techbook/pkg/models"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the domain error kinds to HTTP statuses and surfaces the
// message to the caller. Nothing is retried.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrIncorrectPassword):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, errorResponse{Error: err.Error()}, status)
}
