package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints.
	GetAvailability gin.HandlerFunc
	BookSlot        gin.HandlerFunc

	// Contact endpoint.
	SubmitContact gin.HandlerFunc

	// Misc endpoints.
	HealthCheck gin.HandlerFunc
	ResumeLog   gin.HandlerFunc
}
