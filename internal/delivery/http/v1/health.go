package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "API Task Manager is running!",
		"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		"environment": h.env,
	})
}
