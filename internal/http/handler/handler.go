package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"valorant-coach-service/internal/http/response"
	"valorant-coach-service/internal/service"
)

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body", nil)
		return false
	}
	return true
}

// writeServiceError maps service failures to the HTTP surface without
// leaking internals. Authentication failures stay deliberately vague.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request payload", verr.Fields)
	case errors.Is(err, service.ErrUserConflict):
		response.Error(w, r, http.StatusBadRequest, "ALREADY_EXISTS", "username or email already exists", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials", nil)
	case errors.Is(err, service.ErrInactiveUser):
		response.Error(w, r, http.StatusBadRequest, "INACTIVE_USER", "inactive user", nil)
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err.Error())
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "internal server error", nil)
	}
}
