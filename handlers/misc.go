package handlers

import (
	"net/http"

	"portfolio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthCheck handles GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}

// ResumeLog handles GET /api/resume: the frontend pings it when the resume is
// downloaded so the request shows up in the logs.
func ResumeLog(c *gin.Context) {
	utils.GetLogger().Info("Resume requested", zap.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
