package handlers

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

import (
	"context"
	"net/http"
)

// Pinger checks a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 503 {object} handlers.ErrorResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeErrorMessage(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
