package handlers

//go:generate mockgen -source=host.go -destination=mock_host.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// HostGetter loads the caller's host profile.
type HostGetter interface {
	GetHostByUserID(ctx context.Context, userID int64) (*models.Host, error)
}

// HostUpdater edits the caller's host profile.
type HostUpdater interface {
	UpdateHostInfo(ctx context.Context, userID int64, info models.HostInfo) (bool, error)
}

// UpdateHostRequest is the JSON body for editing a host profile
// swagger:model UpdateHostRequest
type UpdateHostRequest struct {
	// Omitted or null clears the value
	AgencyName *string `json:"agencyName" example:"Acme Events"`
	Bio        *string `json:"bio" example:"Conferences since 2010"`
}

// NewHostEventsHandler returns an HTTP handler listing the caller's events.
// @Summary List my events
// @Tags host
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EventDTO
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Host profile not found."
// @Router /api/host/events [get]
func NewHostEventsHandler(svc HostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		host, err := svc.GetHostByUserID(r.Context(), p.UserID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		if host == nil {
			writeErrorMessage(w, http.StatusNotFound, "Host profile not found.")
			return
		}

		writeJSON(w, http.StatusOK, models.ToEventDTOs(host.Events))
	}
}

// NewUpdateHostHandler returns an HTTP handler updating the caller's host profile.
// @Summary Update my host profile
// @Tags host
// @Accept json
// @Security BearerAuth
// @Param host body handlers.UpdateHostRequest true "Host profile"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Unable to update host info."
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/host [put]
func NewUpdateHostHandler(svc HostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req UpdateHostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := svc.UpdateHostInfo(r.Context(), p.UserID, models.HostInfo{
			AgencyName: req.AgencyName,
			Bio:        req.Bio,
		})
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		if !updated {
			writeErrorMessage(w, http.StatusBadRequest, "Unable to update host info.")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
