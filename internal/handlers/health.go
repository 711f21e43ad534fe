package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health répond au check de vivacité de la racine.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Froakie_TCG Backend Server Running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
