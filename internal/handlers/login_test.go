package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
	"github.com/sbilibin2017/gw-event-listing/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	t.Run("success", func(t *testing.T) {
		user := models.SignedInUser{ID: 7, FirstName: "John", LastName: "Doe", Email: "john@example.com", UserType: models.RoleHost}
		mockSvc.EXPECT().
			Login(gomock.Any(), "john@example.com", "pass123").
			Return(&models.LoginResult{Token: "JWT_TOKEN", User: user}, nil)

		rr := httptest.NewRecorder()
		NewLoginHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/user/login",
			LoginRequest{Email: "john@example.com", Password: "pass123"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "JWT_TOKEN", resp["token"])
		signedIn, ok := resp["signedInUser"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Host", signedIn["userType"])
		assert.Equal(t, "john@example.com", signedIn["email"])
	})

	t.Run("invalid JSON", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewLoginHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/user/login", "{invalid json}"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid request body", decodeError(t, rr).Error)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "john@example.com", "wrong").
			Return(nil, services.ErrInvalidCredentials)

		rr := httptest.NewRecorder()
		NewLoginHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/user/login",
			LoginRequest{Email: "john@example.com", Password: "wrong"}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, rr).Error)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewLoginHandler(mockSvc)(rr, newRequest(t, http.MethodPost, "/api/user/login",
			LoginRequest{Email: "john@example.com", Password: "pass123"}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
