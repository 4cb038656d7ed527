package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noah-isme/udaan-api/pkg/logger"
)

// ClientIDHeader identifies the caller across requests. It replaces the
// browser storage the preferences used to live in.
const ClientIDHeader = "X-Client-ID"

const maxClientIDLength = 128

// ClientID reads the client identifier from the request, issuing a new one
// when it is absent or unusable, and echoes it on the response.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if id == "" || len(id) > maxClientIDLength {
			id = uuid.NewString()
		}
		c.Set(logger.ClientIDKey, id)
		c.Header(ClientIDHeader, id)
		c.Next()
	}
}

// ClientIDFrom returns the identifier set by ClientID.
func ClientIDFrom(c *gin.Context) string {
	return c.GetString(logger.ClientIDKey)
}
