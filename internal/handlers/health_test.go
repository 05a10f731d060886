package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		pingErr      error
		expectedCode int
	}{
		{name: "healthy", expectedCode: http.StatusOK},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), expectedCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := NewMockPinger(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rr := httptest.NewRecorder()
			NewHealthHandler(db)(rr, newRequest(t, http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
