package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

func TestHostEventsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("lists the caller's events", func(t *testing.T) {
		svc := NewMockHostGetter(ctrl)
		svc.EXPECT().GetHostByUserID(gomock.Any(), int64(10)).Return(&models.Host{
			ID:     10,
			Events: []models.Event{{ID: 1, Title: "Conf", HostID: 10}, {ID: 2, Title: "Meetup", HostID: 10}},
		}, nil)

		rr := httptest.NewRecorder()
		NewHostEventsHandler(svc)(rr, asUser(newRequest(t, http.MethodGet, "/api/host/events", nil), 10, models.RoleHost))

		assert.Equal(t, http.StatusOK, rr.Code)
		var dtos []models.EventDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dtos))
		assert.Len(t, dtos, 2)
	})

	t.Run("no host profile", func(t *testing.T) {
		svc := NewMockHostGetter(ctrl)
		svc.EXPECT().GetHostByUserID(gomock.Any(), int64(10)).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewHostEventsHandler(svc)(rr, asUser(newRequest(t, http.MethodGet, "/api/host/events", nil), 10, models.RoleHost))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Host profile not found.", decodeError(t, rr).Error)
	})
}

func TestUpdateHostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("updated", func(t *testing.T) {
		svc := NewMockHostUpdater(ctrl)
		svc.EXPECT().UpdateHostInfo(gomock.Any(), int64(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, info models.HostInfo) (bool, error) {
				require.NotNil(t, info.AgencyName)
				assert.Equal(t, "Acme", *info.AgencyName)
				assert.Nil(t, info.Bio)
				return true, nil
			})

		req := asUser(newRequest(t, http.MethodPut, "/api/host", `{"agencyName":"Acme"}`), 10, models.RoleHost)
		rr := httptest.NewRecorder()
		NewUpdateHostHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("no host row", func(t *testing.T) {
		svc := NewMockHostUpdater(ctrl)
		svc.EXPECT().UpdateHostInfo(gomock.Any(), int64(10), gomock.Any()).Return(false, nil)

		req := asUser(newRequest(t, http.MethodPut, "/api/host", `{}`), 10, models.RoleHost)
		rr := httptest.NewRecorder()
		NewUpdateHostHandler(svc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Unable to update host info.", decodeError(t, rr).Error)
	})
}
