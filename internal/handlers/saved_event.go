package handlers

//go:generate mockgen -source=saved_event.go -destination=mock_saved_event.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// SavedEventManager manages the caller's bookmarks.
type SavedEventManager interface {
	GetSavedEvents(ctx context.Context, userID int64) ([]models.Event, error)
	SaveEvent(ctx context.Context, userID, eventID int64) (bool, error)
	RemoveSavedEvent(ctx context.Context, userID, eventID int64) (bool, error)
}

// NewSavedEventsHandler returns an HTTP handler listing the caller's saved events.
// @Summary List saved events
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EventDTO
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/user/saved [get]
func NewSavedEventsHandler(svc SavedEventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		events, err := svc.GetSavedEvents(r.Context(), p.UserID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ToEventDTOs(events))
	}
}

// NewSaveEventHandler returns an HTTP handler bookmarking an event.
// @Summary Save event
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Unable to save event."
// @Router /api/user/saved/{eventId} [post]
func NewSaveEventHandler(svc SavedEventManager) http.HandlerFunc {
	return savedEventAction(svc.SaveEvent, "Event saved successfully.", "Unable to save event.")
}

// NewRemoveSavedEventHandler returns an HTTP handler removing a bookmark.
// @Summary Remove saved event
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse "Unable to remove event."
// @Router /api/user/saved/{eventId} [delete]
func NewRemoveSavedEventHandler(svc SavedEventManager) http.HandlerFunc {
	return savedEventAction(svc.RemoveSavedEvent, "Event removed successfully.", "Unable to remove event.")
}

func savedEventAction(
	action func(ctx context.Context, userID, eventID int64) (bool, error),
	okMsg, failMsg string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		eventID, ok := pathID(r, "eventId")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, failMsg)
			return
		}

		done, err := action(r.Context(), p.UserID, eventID)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		if !done {
			writeErrorMessage(w, http.StatusBadRequest, failMsg)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: okMsg})
	}
}
