package services

//go:generate mockgen -source=saved_event.go -destination=mock_saved_event.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// UserGetter looks users up by ID.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// EventGetter looks events up by ID.
type EventGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

// SavedEventStore persists user/event bookmarks.
type SavedEventStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Event, error)
	Add(ctx context.Context, userID, eventID int64) error    // No-op when already saved
	Remove(ctx context.Context, userID, eventID int64) error // No-op when not saved
}

// SavedEventService manages the events a user has bookmarked.
type SavedEventService struct {
	users  UserGetter
	events EventGetter
	saved  SavedEventStore
}

// NewSavedEventService creates a new SavedEventService.
func NewSavedEventService(users UserGetter, events EventGetter, saved SavedEventStore) *SavedEventService {
	return &SavedEventService{users: users, events: events, saved: saved}
}

// GetSavedEvents returns the user's saved events; an unknown user has none.
func (s *SavedEventService) GetSavedEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	const op = "retrieving saved events"

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, apperrors.NewDataError(op, err)
	}
	if user == nil {
		logger.FromContext(ctx).Warnw("user not found", "user_id", userID)
		return []models.Event{}, nil
	}

	events, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list saved events", "user_id", userID, "error", err)
		return nil, apperrors.NewDataError(op, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// SaveEvent bookmarks the event. It returns false when the user or the event does not exist.
func (s *SavedEventService) SaveEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	const op = "saving the event"

	ok, err := s.bothExist(ctx, op, userID, eventID)
	if err != nil || !ok {
		return false, err
	}

	if err := s.saved.Add(ctx, userID, eventID); err != nil {
		logger.FromContext(ctx).Errorw("failed to save event", "user_id", userID, "event_id", eventID, "error", err)
		return false, apperrors.NewDataError(op, err)
	}
	return true, nil
}

// RemoveSavedEvent drops the bookmark. Removing an event that was never saved still returns true.
func (s *SavedEventService) RemoveSavedEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	const op = "removing the saved event"

	ok, err := s.bothExist(ctx, op, userID, eventID)
	if err != nil || !ok {
		return false, err
	}

	if err := s.saved.Remove(ctx, userID, eventID); err != nil {
		logger.FromContext(ctx).Errorw("failed to remove saved event", "user_id", userID, "event_id", eventID, "error", err)
		return false, apperrors.NewDataError(op, err)
	}
	return true, nil
}

func (s *SavedEventService) bothExist(ctx context.Context, op string, userID, eventID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "error", err)
		return false, apperrors.NewDataError(op, err)
	}
	if user == nil {
		logger.FromContext(ctx).Warnw("user not found", "user_id", userID)
		return false, nil
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get event", "event_id", eventID, "error", err)
		return false, apperrors.NewDataError(op, err)
	}
	if event == nil {
		logger.FromContext(ctx).Warnw("event not found", "event_id", eventID)
		return false, nil
	}
	return true, nil
}
