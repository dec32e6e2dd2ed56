package handlers

import (
	"errors"
	"net/http"

	"staycation/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// currentUserID returns the user set by JWTAuthUserMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// statusOf maps a service error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSessionForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidTransition):
		return http.StatusConflict
	}
	switch booking.CodeOf(err) {
	case booking.CodeMissingField, booking.CodeInvalidTimeRange, booking.CodeDateConflict:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": message}. Server failures are logged and
// replaced by fallback so store details never reach the client.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	msg := err.Error()
	if booking.CodeOf(err) != "" {
		msg = booking.MessageOf(err)
	}
	c.JSON(status, gin.H{"error": msg})
}
