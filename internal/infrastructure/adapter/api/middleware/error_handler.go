package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fantasy-cricket/internal/domain/port/core"
	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns a 500 response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": GetRequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.ErrorCode(errs.ErrInternalServer),
					Message: errs.PublicMessage(errs.ErrInternalServer),
				})
			}
		}()

		c.Next()
	}
}

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsUnauthenticatedError(err):
		return http.StatusUnauthorized
	case errs.IsForbiddenError(err):
		return http.StatusForbidden
	case errs.IsRetryableError(err):
		return http.StatusConflict
	case errs.IsValidationError(err), errs.IsStateConflictError(err),
		errs.IsInsufficientFundsError(err), errs.IsConflictError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes the standard error body for err and stops the handler chain.
// The error is attached to the context so the request logger records it.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusCode(err), dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: errs.PublicMessage(err),
	})
}
