package middleware

import (
	"github.com/gin-gonic/gin"
)

const ValidatedUserIDKey = "user_id_validated"

// ExtractUserID requires an authenticated caller and exposes its id as a
// plain string for middleware keyed per user (idempotency, rate limits).
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			abortWithError(c, ErrTokenNotFound)
			return
		}

		c.Set(ValidatedUserIDKey, caller.UserID.String())
		c.Next()
	}
}
