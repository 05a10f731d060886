package services

//go:generate mockgen -source=event.go -destination=mock_event.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// EventReader defines read-only operations for events.
type EventReader interface {
	GetAll(ctx context.Context) ([]models.Event, error)                            // Returns every event
	GetByID(ctx context.Context, id int64) (*models.Event, error)                  // Returns nil when absent
	Search(ctx context.Context, filter models.EventFilter) ([]models.Event, error) // Returns events matching all set filters
}

// EventWriter defines write operations for events.
type EventWriter interface {
	Add(ctx context.Context, event *models.Event) error    // Inserts and assigns the ID
	Update(ctx context.Context, event *models.Event) error // Overwrites scalar fields
	Delete(ctx context.Context, id int64) error            // Removes the event
}

// EventCache caches single events by ID.
type EventCache interface {
	Get(ctx context.Context, id int64) (*models.Event, error) // Returns nil on a miss
	Set(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher announces committed event changes.
type EventPublisher interface {
	Publish(ctx context.Context, notification models.EventNotification) error
}

// EventService orchestrates event reads and owner-restricted writes.
type EventService struct {
	reader    EventReader
	writer    EventWriter
	cache     EventCache
	publisher EventPublisher
}

// NewEventService creates a new EventService. cache and publisher may be nil.
func NewEventService(
	reader EventReader,
	writer EventWriter,
	cache EventCache,
	publisher EventPublisher,
) *EventService {
	return &EventService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		publisher: publisher,
	}
}

// GetAllEvents returns every event.
func (s *EventService) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.reader.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get events", "error", err)
		return nil, apperrors.NewDataError("retrieving all events", err)
	}
	return events, nil
}

// GetEventByID returns the event or a DataError wrapping NotFoundError.
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	const op = "retrieving the event"

	if event := s.cachedEvent(ctx, id); event != nil {
		return event, nil
	}

	event, err := s.findEvent(ctx, op, id)
	if err != nil {
		return nil, err
	}

	s.cacheEvent(ctx, event)
	return event, nil
}

// AddEvent stores an already validated event owned by event.HostID.
func (s *EventService) AddEvent(ctx context.Context, event *models.Event) error {
	if err := s.writer.Add(ctx, event); err != nil {
		logger.FromContext(ctx).Errorw("failed to add event", "host_id", event.HostID, "error", err)
		return apperrors.NewDataError("adding the event", err)
	}

	s.publish(ctx, models.EventCreated, event.ID, event.HostID)
	return nil
}

// UpdateEvent overwrites the event if actingUserID owns the stored row.
// The HostID carried by the payload is ignored.
func (s *EventService) UpdateEvent(ctx context.Context, event *models.Event, actingUserID int64) error {
	const op = "updating the event"

	existing, err := s.findEvent(ctx, op, event.ID)
	if err != nil {
		return err
	}

	if existing.HostID != actingUserID {
		logger.FromContext(ctx).Warnw("event update by non-owner",
			"event_id", event.ID, "owner_id", existing.HostID, "acting_user_id", actingUserID)
		return apperrors.NewDataError(op, &apperrors.UnauthorizedError{
			Message: "You are not authorized to update this event.",
		})
	}

	event.HostID = existing.HostID
	if err := s.writer.Update(ctx, event); err != nil {
		logger.FromContext(ctx).Errorw("failed to update event", "event_id", event.ID, "error", err)
		return apperrors.NewDataError(op, err)
	}

	s.evict(ctx, event.ID)
	s.publish(ctx, models.EventUpdated, event.ID, event.HostID)
	return nil
}

// DeleteEvent removes the event if actingUserID owns it.
func (s *EventService) DeleteEvent(ctx context.Context, id int64, actingUserID int64) error {
	const op = "deleting the event"

	existing, err := s.findEvent(ctx, op, id)
	if err != nil {
		return err
	}

	if existing.HostID != actingUserID {
		logger.FromContext(ctx).Warnw("event delete by non-owner",
			"event_id", id, "owner_id", existing.HostID, "acting_user_id", actingUserID)
		return apperrors.NewDataError(op, &apperrors.UnauthorizedError{
			Message: "You are not authorized to delete this event.",
		})
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete event", "event_id", id, "error", err)
		return apperrors.NewDataError(op, err)
	}

	s.evict(ctx, id)
	s.publish(ctx, models.EventDeleted, id, existing.HostID)
	return nil
}

// SearchEvents returns the events matching every filter that is set.
func (s *EventService) SearchEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.reader.Search(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to search events", "error", err)
		return nil, apperrors.NewDataError("searching events", err)
	}
	return events, nil
}

func (s *EventService) findEvent(ctx context.Context, op string, id int64) (*models.Event, error) {
	event, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get event", "event_id", id, "error", err)
		return nil, apperrors.NewDataError(op, err)
	}
	if event == nil {
		logger.FromContext(ctx).Warnw("event not found", "event_id", id)
		return nil, apperrors.NewDataError(op, &apperrors.NotFoundError{Resource: "event", ID: id})
	}
	return event, nil
}

func (s *EventService) cachedEvent(ctx context.Context, id int64) *models.Event {
	if s.cache == nil {
		return nil
	}
	event, err := s.cache.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warnw("event cache read failed", "event_id", id, "error", err)
		return nil
	}
	return event
}

func (s *EventService) cacheEvent(ctx context.Context, event *models.Event) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, event); err != nil {
		logger.FromContext(ctx).Warnw("event cache write failed", "event_id", event.ID, "error", err)
	}
}

func (s *EventService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warnw("event cache eviction failed", "event_id", id, "error", err)
	}
}

// publish is best effort; a broker failure never fails the request.
func (s *EventService) publish(ctx context.Context, kind string, eventID, hostID int64) {
	if s.publisher == nil {
		logger.FromContext(ctx).Debugw("event publisher not configured, skipping", "type", kind, "event_id", eventID)
		return
	}

	notification := models.EventNotification{
		NotificationID: uuid.NewString(),
		Type:           kind,
		EventID:        eventID,
		HostID:         hostID,
		Timestamp:      time.Now().Unix(),
	}

	if err := s.publisher.Publish(ctx, notification); err != nil {
		logger.FromContext(ctx).Warnw("event notification dropped", "type", kind, "event_id", eventID, "error", err)
	}
}
