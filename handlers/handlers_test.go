package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"staycation/models"
	"staycation/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReservationService struct {
	err     error
	gotUser string
	gotReq  models.ReservationRequest
}

func (s *stubReservationService) CreateReservation(ctx context.Context, userID string, req models.ReservationRequest) (*models.Reservation, *models.ListingWithReservations, error) {
	s.gotUser, s.gotReq = userID, req
	if s.err != nil {
		return nil, nil, s.err
	}
	res := models.Reservation{ID: "res-1", ListingID: req.ListingID, TotalPrice: req.TotalPrice}
	return &res, &models.ListingWithReservations{
		Listing:      models.Listing{ID: req.ListingID, Title: "Loft"},
		Reservations: []models.Reservation{res},
	}, nil
}

func (s *stubReservationService) ListTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Trip{{Reservation: models.Reservation{ID: "res-1", UserID: userID}, Label: "Jun 1, 2024 - Jun 2, 2024"}}, nil
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func newTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(userID))
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestCreateReservationHandler_Success(t *testing.T) {
	svc := &stubReservationService{}
	h := NewReservationHandler(svc, zap.NewNop())
	r := newTestRouter("u1")
	r.POST("/api/reservations", h.CreateReservation)

	w := doJSON(r, http.MethodPost, "/api/reservations", models.ReservationRequest{ListingID: "listing-1", StartDate: "2024-06-01", TotalPrice: 110})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.gotUser)
	assert.Equal(t, "listing-1", svc.gotReq.ListingID)

	var got models.ListingWithReservations
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Loft", got.Title)
	require.Len(t, got.Reservations, 1)
	assert.Equal(t, "res-1", got.Reservations[0].ID)
}

func TestCreateReservationHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing field", booking.NewMissingFieldError("Missing required fields"), http.StatusBadRequest, "Missing required fields"},
		{"invalid range", booking.NewInvalidTimeRangeError("Time slot not available or conflicts with cleaning time"), http.StatusBadRequest, "Time slot not available or conflicts with cleaning time"},
		{"date conflict", booking.NewDateConflictError("Dates not available"), http.StatusBadRequest, "Dates not available"},
		{"not found", booking.NewNotFoundError("Listing not found"), http.StatusNotFound, "Listing not found"},
		{"persistence", booking.NewPersistenceError("Failed to create reservation", errors.New("connection reset")), http.StatusInternalServerError, "Failed to create reservation"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to create reservation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReservationHandler(&stubReservationService{err: tt.err}, zap.NewNop())
			r := newTestRouter("u1")
			r.POST("/api/reservations", h.CreateReservation)

			w := doJSON(r, http.MethodPost, "/api/reservations", models.ReservationRequest{ListingID: "listing-1"})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, errorBody(t, w))
		})
	}
}

func TestCreateReservationHandler_RequiresUser(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{}, zap.NewNop())
	r := newTestRouter("")
	r.POST("/api/reservations", h.CreateReservation)

	w := doJSON(r, http.MethodPost, "/api/reservations", models.ReservationRequest{})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReservationHandler_BadBody(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{}, zap.NewNop())
	r := newTestRouter("u1")
	r.POST("/api/reservations", h.CreateReservation)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTripsHandler(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{}, zap.NewNop())
	r := newTestRouter("u1")
	r.GET("/api/reservations", h.ListTrips)

	w := doJSON(r, http.MethodGet, "/api/reservations", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Trips []models.Trip `json:"trips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Trips, 1)
	assert.Equal(t, "Jun 1, 2024 - Jun 2, 2024", body.Trips[0].Label)
}

func TestStatusOf_SessionErrors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusOf(booking.ErrSessionNotFound))
	assert.Equal(t, http.StatusForbidden, statusOf(booking.ErrSessionForbidden))
	assert.Equal(t, http.StatusConflict, statusOf(booking.ErrInvalidTransition))
}
