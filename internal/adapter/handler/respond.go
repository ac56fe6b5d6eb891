package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithField("err", err).Error("write response")
	}
}

// writeError maps domain errors onto HTTP statuses; anything unrecognized is
// logged and reported as a plain 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrPartNotFound),
		errors.Is(err, domain.ErrCartLineNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrWrongCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	default:
		log.WithField("err", err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
