package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-listing/internal/middlewares"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

var (
	confStart = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	confEnd   = time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC)
)

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	return httptest.NewRequest(method, target, &buf)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asUser(r *http.Request, id int64, role models.Role) *http.Request {
	p := models.Principal{UserID: id, Email: "user@example.com", Role: role}
	return r.WithContext(middlewares.ContextWithPrincipal(r.Context(), p))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func confRequest() EventRequest {
	return EventRequest{
		Title:         "Conf",
		Location:      "NYC",
		StartDateTime: Timestamp{confStart},
		EndDateTime:   Timestamp{confEnd},
		Price:         299.99,
	}
}
