package handlers

import (
	"net/http"
	"regexp"

	"portfolio/models"
	"portfolio/services/booking"
	"portfolio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// BookingHandler serves the availability and booking endpoints.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date is required (YYYY-MM-DD)", "")
		return
	}
	if !datePattern.MatchString(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD", "")
		return
	}

	resp, err := h.svc.Availability(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("availability lookup failed", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BookSlot handles POST /api/book.
func (h *BookingHandler) BookSlot(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	b, err := h.svc.Reserve(c.Request.Context(), req)
	if err != nil {
		switch err {
		case booking.ErrMissingFields, booking.ErrInvalidEmail, booking.ErrInvalidSlot:
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case booking.ErrSlotTaken:
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
		default:
			h.logger.Error("reservation failed", zap.String("date", req.Date),
				zap.String("time", req.Time), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal error", "")
		}
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Booking: *b})
}
