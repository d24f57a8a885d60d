package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/tropicaldog17/cardfolio/internal/errors"
)

// ErrorResponse is the body of every non-2xx JSON reply
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps a service error onto its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err), apperrors.IsInvalidReference(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidation("body", "invalid JSON: "+err.Error())
	}
	return nil
}

// parseID rejects identifiers that are not UUIDs
func parseID(field, value string) (string, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", apperrors.NewInvalidReference(field, value)
	}
	return value, nil
}

// checkRef validates an optional identifier carried in a request body
func checkRef(field string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	_, err := parseID(field, *value)
	return err
}
