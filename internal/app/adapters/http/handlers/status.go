package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ircadmin/internal/app/version"
)

func (h *Handlers) HealthHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handlers) StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":   version.Version,
		"nick":      h.identity.Nick(),
		"connected": h.identity.IsConnected(),
		"admins":    h.sessions.Count(),
	})
}
