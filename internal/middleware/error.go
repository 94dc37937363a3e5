package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "cryptoex/internal/errors"
	"cryptoex/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error as the
// {"error": {"code", "message"}} envelope. Errors that are not AppErrors are
// logged and reported as INTERNAL_ERROR so upstream details never reach the
// client. Responses a handler already wrote are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Named("http").With(
			"request_id", c.GetString(requestIDKey),
			"route", routeOf(c),
		)

		appErr := apperrors.ErrInternalServer
		var target *apperrors.AppError
		switch {
		case errors.As(err, &target):
			appErr = target
			if appErr.Internal != nil {
				log.Errorw("request failed", "code", appErr.Code, "error", appErr.Internal)
			} else {
				log.Debugw("request rejected", "code", appErr.Code, "message", appErr.Message)
			}
		default:
			log.Errorw("unexpected error", "method", c.Request.Method, "error", err)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
