package handlers

import (
	"net/http"

	"portfolio/models"
	"portfolio/services/contact"
	"portfolio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the contact-form endpoint.
type ContactHandler struct {
	svc    contact.ContactService
	logger *zap.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, logger: logger}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// Honeypot: bots fill the hidden website field, humans never do. Pretend
	// success so the bot moves on.
	if req.Website != "" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := h.svc.Submit(c.Request.Context(), req, c.ClientIP()); err != nil {
		if err == contact.ErrMissingFields {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.logger.Error("contact submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
