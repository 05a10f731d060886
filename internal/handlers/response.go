package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/middlewares"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/services"
)

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Validation messages keyed by field, present on 400 validation failures
	Fields map[string][]string `json:"fields,omitempty"`
}

// MessageResponse is a plain confirmation body
// swagger:model MessageResponse
type MessageResponse struct {
	// default: OK
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps service errors to HTTP statuses. Unknown errors become 500 and are logged.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErrs apperrors.ValidationErrors
		notFound       *apperrors.NotFoundError
		unauthorized   *apperrors.UnauthorizedError
	)

	switch {
	case errors.As(err, &validationErrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "Validation failed",
			Fields: validationErrs.ByField(),
		})
	case errors.As(err, &notFound):
		writeErrorMessage(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &unauthorized):
		writeErrorMessage(w, http.StatusUnauthorized, unauthorized.Message)
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeErrorMessage(w, http.StatusConflict, "Email is already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requirePrincipal returns the caller or writes 401.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	p, ok := middlewares.PrincipalFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warnw("principal missing from context")
		writeErrorMessage(w, http.StatusUnauthorized, "User not found.")
		return models.Principal{}, false
	}
	return p, true
}
