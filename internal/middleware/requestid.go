package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"

	// RequestIDHeader carries the request ID on responses.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags each request with a server-generated UUID. A client-sent
// X-Request-ID is kept as client_request_id for correlation but never
// trusted as the canonical ID.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		if fromClient := c.GetHeader(RequestIDHeader); fromClient != "" {
			c.Set("client_request_id", fromClient)
			log.WithFields(logrus.Fields{
				"request_id":        id,
				"client_request_id": fromClient,
			}).Debug("client request ID mapped to server ID")
		}

		c.Next()
	}
}
