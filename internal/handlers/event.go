package handlers

//go:generate mockgen -source=event.go -destination=mock_event.go -package=handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/validation"
)

// EventLister lists every event.
type EventLister interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

// EventGetter fetches one event.
type EventGetter interface {
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
}

// EventSearcher filters events.
type EventSearcher interface {
	SearchEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// EventCreator stores new events.
type EventCreator interface {
	AddEvent(ctx context.Context, event *models.Event) error
}

// EventUpdater updates events owned by the acting user.
type EventUpdater interface {
	UpdateEvent(ctx context.Context, event *models.Event, actingUserID int64) error
}

// EventDeleter deletes events owned by the acting user.
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int64, actingUserID int64) error
}

// EventRequest is the JSON body for creating or updating an event
// swagger:model EventRequest
type EventRequest struct {
	// required: true
	// default: Conf
	Title string `json:"title" example:"Conf"`

	// required: true
	// default: NYC
	Location string `json:"location" example:"NYC"`

	ImageURL string `json:"imageUrl" example:"https://example.com/banner.png"`

	// required: true
	StartDateTime Timestamp `json:"startDateTime" swaggertype:"string" format:"date-time" example:"2024-06-15T09:00:00Z"`

	// required: true
	EndDateTime Timestamp `json:"endDateTime" swaggertype:"string" format:"date-time" example:"2024-06-15T17:00:00Z"`

	Price float64 `json:"price" example:"299.99"`

	URL string `json:"url" example:"https://example.com/conf"`
}

func (req EventRequest) toModel() models.Event {
	return models.Event{
		Title:         req.Title,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		StartDateTime: req.StartDateTime.Time,
		EndDateTime:   req.EndDateTime.Time,
		Price:         req.Price,
		URL:           req.URL,
	}
}

// decodeEvent reads and validates the event body, writing 400 on failure.
func decodeEvent(w http.ResponseWriter, r *http.Request) (models.Event, bool) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromContext(r.Context()).Warnw("invalid event body", "err", err)
		writeErrorMessage(w, http.StatusBadRequest, "Invalid event data.")
		return models.Event{}, false
	}

	event := req.toModel()
	if errs := validation.Event(event); len(errs) > 0 {
		writeError(r.Context(), w, errs)
		return models.Event{}, false
	}
	return event, true
}

// NewListEventsHandler returns an HTTP handler listing all events.
// @Summary List events
// @Description Returns every event as a public DTO
// @Tags events
// @Produce json
// @Success 200 {array} models.EventDTO
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/event [get]
func NewListEventsHandler(svc EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.GetAllEvents(r.Context())
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ToEventDTOs(events))
	}
}

// NewGetEventHandler returns an HTTP handler fetching one event.
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.EventDTO
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Event not found"
// @Router /api/event/{id} [get]
func NewGetEventHandler(svc EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid event id.")
			return
		}

		event, err := svc.GetEventByID(r.Context(), id)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, event.ToDTO())
	}
}

// NewSearchEventsHandler returns an HTTP handler searching events.
// @Summary Search events
// @Description All filters are optional and combined with AND. query matches title or location.
// @Tags events
// @Produce json
// @Param query query string false "Substring of title or location"
// @Param from query string false "Earliest start, RFC3339 or YYYY-MM-DD"
// @Param to query string false "Latest start, RFC3339 or YYYY-MM-DD"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {array} models.EventDTO
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/event/search [get]
func NewSearchEventsHandler(svc EventSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseEventFilter(r)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		events, err := svc.SearchEvents(r.Context(), filter)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.ToEventDTOs(events))
	}
}

func parseEventFilter(r *http.Request) (models.EventFilter, error) {
	q := r.URL.Query()
	filter := models.EventFilter{Query: q.Get("query")}

	if s := strings.TrimSpace(q.Get("from")); s != "" {
		from, err := parseTimestamp(s)
		if err != nil {
			return filter, fmt.Errorf("invalid from: %s", s)
		}
		filter.From = &from
	}
	if s := strings.TrimSpace(q.Get("to")); s != "" {
		to, err := parseTimestamp(s)
		if err != nil {
			return filter, fmt.Errorf("invalid to: %s", s)
		}
		filter.To = &to
	}
	if s := strings.TrimSpace(q.Get("minPrice")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid minPrice: %s", s)
		}
		filter.MinPrice = &v
	}
	if s := strings.TrimSpace(q.Get("maxPrice")); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid maxPrice: %s", s)
		}
		filter.MaxPrice = &v
	}

	return filter, nil
}

// NewCreateEventHandler returns an HTTP handler creating an event owned by the caller.
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body handlers.EventRequest true "Event"
// @Success 201 {object} models.EventDTO
// @Header 201 {string} Location "/api/event/{id}"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/event [post]
func NewCreateEventHandler(svc EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		event, ok := decodeEvent(w, r)
		if !ok {
			return
		}
		event.HostID = p.UserID

		if err := svc.AddEvent(r.Context(), &event); err != nil {
			writeError(r.Context(), w, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/event/%d", event.ID))
		writeJSON(w, http.StatusCreated, event.ToDTO())
	}
}

// NewUpdateEventHandler returns an HTTP handler updating an event owned by the caller.
// @Summary Update event
// @Tags events
// @Accept json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body handlers.EventRequest true "Event"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/event/{id} [put]
func NewUpdateEventHandler(svc EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid event data.")
			return
		}

		event, ok := decodeEvent(w, r)
		if !ok {
			return
		}
		event.ID = id
		event.HostID = p.UserID

		if err := svc.UpdateEvent(r.Context(), &event, p.UserID); err != nil {
			writeError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteEventHandler returns an HTTP handler deleting an event owned by the caller.
// @Summary Delete event
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/event/{id} [delete]
func NewDeleteEventHandler(svc EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid event id.")
			return
		}

		if err := svc.DeleteEvent(r.Context(), id, p.UserID); err != nil {
			writeError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
