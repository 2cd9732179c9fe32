package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/fantasy-cricket/internal/infrastructure/adapter/database"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID keeps the caller's X-Request-ID or generates one. The id is echoed in the
// response and attached to the request context, where the SQL logger picks it up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), database.RequestIDKey{}, id))
		c.Next()
	}
}

// GetRequestID returns the id assigned to the current request
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
