package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ultimatebank/account-service/internal/middleware"
	"github.com/ultimatebank/account-service/internal/models"
	"go.uber.org/zap"
)

// statusFor maps a failure kind to its HTTP status. Unknown failures are
// server errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *AccountHandler) respondWithServiceError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	switch status {
	case http.StatusUnauthorized:
		middleware.RespondWithError(c, status, middleware.UnauthorizedMessage)
	case http.StatusNotFound:
		middleware.RespondWithError(c, status, "Account not found")
	case http.StatusBadRequest:
		middleware.RespondWithError(c, status, "Invalid request data")
	default:
		h.logger.Error(fallback,
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		_ = c.Error(err)
		middleware.RespondWithError(c, status, fallback)
	}
}
