package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) errorJSON(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// serviceError maps domain and validation failures onto HTTP statuses.
// Anything unknown is a 500 and gets logged.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrors), errors.Is(err, domain.ErrAnchorNotSunday):
		h.errorJSON(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNameTaken), errors.Is(err, domain.ErrTerminalTaken):
		h.errorJSON(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.errorJSON(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("internal server error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.errorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
