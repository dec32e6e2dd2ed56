package handlers

import (
	"net/http"

	"staycation/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency check from the health monitor.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": "ok", "message": "Hi, I'm Staycation", "dependencies": status})
}
