package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors pushed via c.Error to the response
// envelope. Tagged AppErrors carry their own status; anything else is
// logged server-side and reported as a generic 500 so internal details
// never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Status() >= http.StatusInternalServerError && logger.Log != nil {
					logger.Log.Error("request failed", "path", c.FullPath(), "error", err)
				}
				response.Error(c, appErr.Status(), appErr.Message, nil)
				return
			}

			if logger.Log != nil {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			}
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
