package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"neonbank/domain/entities"

	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors to HTTP statuses. Unknown errors
// become opaque 500s so internals never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount),
		errors.Is(err, entities.ErrMemoTooLong),
		errors.Is(err, entities.ErrSelfTransfer),
		errors.Is(err, entities.ErrInvalidPayout):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "insufficient funds")
	case errors.Is(err, entities.ErrAccountNotFound),
		errors.Is(err, entities.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, entities.ErrGameDisabled):
		writeError(w, http.StatusForbidden, "game is disabled")
	case errors.Is(err, entities.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, entities.ErrNameTaken):
		writeError(w, http.StatusConflict, "character name already taken")
	default:
		log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON[T any](r *http.Request, dst *T) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
