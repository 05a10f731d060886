package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/services"
)

type eventMocks struct {
	reader    *services.MockEventReader
	writer    *services.MockEventWriter
	cache     *services.MockEventCache
	publisher *services.MockEventPublisher
}

func newEventService(t *testing.T) (*services.EventService, eventMocks) {
	ctrl := gomock.NewController(t)
	m := eventMocks{
		reader:    services.NewMockEventReader(ctrl),
		writer:    services.NewMockEventWriter(ctrl),
		cache:     services.NewMockEventCache(ctrl),
		publisher: services.NewMockEventPublisher(ctrl),
	}
	return services.NewEventService(m.reader, m.writer, m.cache, m.publisher), m
}

func testEvent(id, hostID int64) *models.Event {
	return &models.Event{
		ID:            id,
		Title:         "Conf",
		Location:      "NYC",
		StartDateTime: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC),
		Price:         299.99,
		HostID:        hostID,
	}
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()

	var dataErr *apperrors.DataError
	require.ErrorAs(t, err, &dataErr)
	var unauthorized *apperrors.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorized)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()

	var dataErr *apperrors.DataError
	require.ErrorAs(t, err, &dataErr)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEventService_GetAllEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().GetAll(ctx).Return([]models.Event{*testEvent(1, 10)}, nil)

		events, err := svc.GetAllEvents(ctx)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		svc, m := newEventService(t)
		storeErr := errors.New("db down")
		m.reader.EXPECT().GetAll(ctx).Return(nil, storeErr)

		events, err := svc.GetAllEvents(ctx)
		assert.Nil(t, events)

		var dataErr *apperrors.DataError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, "retrieving all events", dataErr.Op)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestEventService_GetEventByID(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, m := newEventService(t)
		m.cache.EXPECT().Get(ctx, int64(1)).Return(testEvent(1, 10), nil)

		event, err := svc.GetEventByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Conf", event.Title)
	})

	t.Run("cache miss reads through", func(t *testing.T) {
		svc, m := newEventService(t)
		m.cache.EXPECT().Get(ctx, int64(1)).Return(nil, nil)
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.cache.EXPECT().Set(ctx, testEvent(1, 10)).Return(nil)

		event, err := svc.GetEventByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), event.HostID)
	})

	t.Run("cache failures fall back to the store", func(t *testing.T) {
		svc, m := newEventService(t)
		m.cache.EXPECT().Get(ctx, int64(1)).Return(nil, errors.New("redis down"))
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.cache.EXPECT().Set(ctx, gomock.Any()).Return(errors.New("redis down"))

		event, err := svc.GetEventByID(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, event)
	})

	t.Run("absent event is a not found data error", func(t *testing.T) {
		svc, m := newEventService(t)
		m.cache.EXPECT().Get(ctx, int64(5)).Return(nil, nil)
		m.reader.EXPECT().GetByID(ctx, int64(5)).Return(nil, nil)

		event, err := svc.GetEventByID(ctx, 5)
		assert.Nil(t, event)
		assertNotFound(t, err)
	})

	t.Run("works without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockEventReader(ctrl)
		svc := services.NewEventService(reader, services.NewMockEventWriter(ctrl), nil, nil)

		reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)

		event, err := svc.GetEventByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), event.ID)
	})
}

func TestEventService_AddEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success publishes a created notification", func(t *testing.T) {
		svc, m := newEventService(t)
		event := testEvent(0, 10)

		m.writer.EXPECT().Add(ctx, event).DoAndReturn(func(_ context.Context, e *models.Event) error {
			e.ID = 1
			return nil
		})
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n models.EventNotification) error {
			assert.Equal(t, models.EventCreated, n.Type)
			assert.Equal(t, int64(1), n.EventID)
			assert.Equal(t, int64(10), n.HostID)
			assert.NotEmpty(t, n.NotificationID)
			return nil
		})

		require.NoError(t, svc.AddEvent(ctx, event))
		assert.Equal(t, int64(1), event.ID)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, m := newEventService(t)
		m.writer.EXPECT().Add(ctx, gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

		assert.NoError(t, svc.AddEvent(ctx, testEvent(0, 10)))
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		svc, m := newEventService(t)
		m.writer.EXPECT().Add(ctx, gomock.Any()).Return(errors.New("insert failed"))

		err := svc.AddEvent(ctx, testEvent(0, 10))
		var dataErr *apperrors.DataError
		assert.ErrorAs(t, err, &dataErr)
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates", func(t *testing.T) {
		svc, m := newEventService(t)
		changed := testEvent(1, 0)
		changed.Price = 349.99

		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.writer.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.Event) error {
			assert.Equal(t, 349.99, e.Price)
			assert.Equal(t, int64(10), e.HostID)
			return nil
		})
		m.cache.EXPECT().Delete(ctx, int64(1)).Return(nil)
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, svc.UpdateEvent(ctx, changed, 10))
	})

	t.Run("non-owner with forged host id is rejected", func(t *testing.T) {
		svc, m := newEventService(t)
		forged := testEvent(1, 20)

		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		assertUnauthorized(t, svc.UpdateEvent(ctx, forged, 20))
	})

	t.Run("missing event", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		assertNotFound(t, svc.UpdateEvent(ctx, testEvent(1, 10), 10))
	})

	t.Run("store error on update", func(t *testing.T) {
		svc, m := newEventService(t)
		storeErr := errors.New("update failed")
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.writer.EXPECT().Update(ctx, gomock.Any()).Return(storeErr)

		err := svc.UpdateEvent(ctx, testEvent(1, 10), 10)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.writer.EXPECT().Delete(ctx, int64(1)).Return(nil)
		m.cache.EXPECT().Delete(ctx, int64(1)).Return(errors.New("redis down"))
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n models.EventNotification) error {
			assert.Equal(t, models.EventDeleted, n.Type)
			return nil
		})

		assert.NoError(t, svc.DeleteEvent(ctx, 1, 10))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(testEvent(1, 10), nil)
		m.writer.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		assertUnauthorized(t, svc.DeleteEvent(ctx, 1, 20))
	})

	t.Run("missing event", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)

		assertNotFound(t, svc.DeleteEvent(ctx, 1, 10))
	})
}

func TestEventService_SearchEvents(t *testing.T) {
	ctx := context.Background()
	minPrice := 100.0
	filter := models.EventFilter{Query: "Festival", MinPrice: &minPrice}

	t.Run("passthrough", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().Search(ctx, filter).Return([]models.Event{*testEvent(1, 10)}, nil)

		events, err := svc.SearchEvents(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		svc, m := newEventService(t)
		m.reader.EXPECT().Search(ctx, filter).Return(nil, errors.New("boom"))

		_, err := svc.SearchEvents(ctx, filter)
		var dataErr *apperrors.DataError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, "searching events", dataErr.Op)
	})
}
