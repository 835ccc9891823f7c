package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/logger"
)

// ErrorResponse is returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps the errs taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *errs.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Fields: vErr.Fields})
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, "Horoscope not found")
	case errors.Is(err, errs.ErrConflict):
		writeError(w, http.StatusConflict, "Horoscope already exists")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
