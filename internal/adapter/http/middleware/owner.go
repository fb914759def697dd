package middleware

import (
	"net/http"
	"strings"

	"todolist/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

const (
	OwnerHeader = "X-Owner-ID"
	ownerKey    = "owner"

	// MaxOwnerLength matches the owner column width in the SQL schema.
	MaxOwnerLength = 128
)

// OwnerMiddleware takes the caller's identity from the X-Owner-ID header. The
// header is set by the authenticating proxy in front of the service and is
// trusted as is.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := strings.TrimSpace(c.GetHeader(OwnerHeader))
		if owner == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingOwner, GetLang(c)),
			)
			return
		}
		if len(owner) > MaxOwnerLength {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidOwner, GetLang(c)),
			)
			return
		}
		c.Set(ownerKey, owner)
		c.Next()
	}
}

func GetOwner(c *gin.Context) string {
	if owner, exists := c.Get(ownerKey); exists {
		if s, ok := owner.(string); ok {
			return s
		}
	}
	return ""
}
