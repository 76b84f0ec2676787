package middleware

import (
	"net/http"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const clientIDHeader = "X-Client-ID"
const clientIDKey = "client_id"

// ClientIdentity requires an X-Client-ID header on every booking route. The
// flow is single-user single-device by construction; the header is the slot
// selector, not an authentication mechanism.
type ClientIdentity struct{}

func NewClientIdentity() *ClientIdentity {
	return &ClientIdentity{}
}

func (m *ClientIdentity) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(clientIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing client id"), "X-Client-ID header is required", nil)
			return
		}

		clientID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "X-Client-ID must be a UUID", nil)
			return
		}

		c.Set(clientIDKey, clientID)
		c.Next()
	}
}

func GetClientID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(clientIDKey)
	if !exists {
		return uuid.Nil, false
	}
	clientID, ok := value.(uuid.UUID)
	return clientID, ok
}
