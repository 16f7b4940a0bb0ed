package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const pingResponse = "pong"

type Pong struct {
	Message string `json:"message"`
}

// Ping answers with plain text unless the caller asks for JSON.
func Ping(c *gin.Context) {
	switch c.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, Pong{Message: pingResponse})
	default:
		c.String(http.StatusOK, pingResponse)
	}
}
