package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timed/pkg/apierrors"
)

const userIDHeader = "X-User-ID"

// IdentityMiddleware requires the user identifier set by the
// authentication gateway in front of this service. The core never
// re-derives trust from credentials; an absent identifier is a 401.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		if s, ok := userID.(string); ok {
			return s
		}
	}
	return ""
}
