package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is set via ldflags at build time.
var Version = "dev"

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version,
	})
}
