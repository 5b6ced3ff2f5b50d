package middleware

import (
	"log/slog"
	"net/http"

	"autoshop-backend/internal/handler/httperr"
	"autoshop-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error recorded on the context. Server-side
// failures are logged with the wrapped stack; client errors are not.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := httperr.Resolve(err)
		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, 10),
			)
		}
		c.JSON(status, body)
	}
}

// Recovery converts panics into a JSON 500 instead of gin's default text body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	})
}
