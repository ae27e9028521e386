package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/jeopardy-backend/internal/apperror"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", apperror.ErrValidation, err)
	}

	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized), errors.Is(err, apperror.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrNoGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrTransition), errors.Is(err, apperror.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrExternalCall):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeAppError hides unexpected errors behind a generic message.
func writeAppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeError(w, status, "internal server error")
		return
	}

	writeError(w, status, PublicMessage(err))
}

// PublicMessage is the text shown to clients: the innermost cause for known error classes.
func PublicMessage(err error) string {
	for _, sentinel := range []error{
		apperror.ErrInvalidCredentials, apperror.ErrUserExists, apperror.ErrUnauthorized,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return err.Error()
}
