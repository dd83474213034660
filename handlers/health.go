package handlers

import (
	"net/http"

	"jiperaha/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last storage health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.CheckedAt.IsZero() && !status.Healthy {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "storage": status})
}
