package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio/models"
	"portfolio/services/booking"
	"portfolio/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned responses so handler tests only exercise
// request parsing and status mapping.
type stubBookingService struct {
	availability *models.AvailabilityResponse
	availErr     error
	booking      *models.Booking
	reserveErr   error
}

func (s *stubBookingService) Availability(ctx context.Context, date string) (*models.AvailabilityResponse, error) {
	return s.availability, s.availErr
}

func (s *stubBookingService) Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	return s.booking, s.reserveErr
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, utils.GetLogger())

	r := gin.New()
	r.GET("/api/availability", h.GetAvailability)
	r.POST("/api/book", h.BookSlot)
	return r
}

func TestGetAvailabilityMissingDate(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityBadDateFormat(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	for _, date := range []string{"10-06-2024", "2024/06/10", "20240610", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability?date="+date, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "date %q", date)
	}
}

func TestGetAvailabilityOK(t *testing.T) {
	r := newTestRouter(&stubBookingService{
		availability: &models.AvailabilityResponse{
			Date:        "2024-06-10",
			Timezone:    "Asia/Kolkata",
			SlotMinutes: 20,
			StartHour:   10,
			EndHour:     17,
			Available:   []string{"10:00", "10:20"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-06-10", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, 20, resp.SlotMinutes)
	assert.Equal(t, []string{"10:00", "10:20"}, resp.Available)
}

func TestGetAvailabilityServiceError(t *testing.T) {
	r := newTestRouter(&stubBookingService{availErr: errors.New("store down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2024-06-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBookSlotMalformedBody(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookSlotStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.ErrMissingFields, http.StatusBadRequest},
		{booking.ErrInvalidEmail, http.StatusBadRequest},
		{booking.ErrInvalidSlot, http.StatusBadRequest},
		{booking.ErrSlotTaken, http.StatusConflict},
		{errors.New("persistence failure"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := newTestRouter(&stubBookingService{reserveErr: tc.err})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book",
			strings.NewReader(`{"email":"a@b.com","date":"2024-06-10","time":"10:00"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)
	}
}

func TestBookSlotSuccess(t *testing.T) {
	r := newTestRouter(&stubBookingService{
		booking: &models.Booking{
			ID:          "2024-06-10-10:00",
			Email:       "a@b.com",
			Date:        "2024-06-10",
			Time:        "10:00",
			Status:      models.BookingStatusConfirmed,
			MeetingLink: "https://meet.google.com",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book",
		strings.NewReader(`{"email":"a@b.com","date":"2024-06-10","time":"10:00"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.BookingStatusConfirmed, resp.Booking.Status)
	assert.Equal(t, "https://meet.google.com", resp.Booking.MeetingLink)
}
