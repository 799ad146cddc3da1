package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kyobegeorge57/falcon-finance/controllers"
	"github.com/kyobegeorge57/falcon-finance/token"
)

// Authenticate guards protected routes. The session token is read
// from the auth_token cookie (browser flows) or the Authorization
// header (API clients). Browser requests without a valid session are
// silently redirected to the entry page; API clients get 401 JSON.
// A nil cache disables revocation checks.
func Authenticate(secretKey string, cache controllers.SessionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken, err := c.Cookie("auth_token")
		if err != nil || clientToken == "" {
			clientToken = c.Request.Header.Get("Authorization")
			clientToken = strings.TrimPrefix(clientToken, "Bearer ")
		}
		if clientToken == "" {
			deny(c, "no session token provided")
			return
		}
		claims, err := token.Validate(clientToken, secretKey)
		if err != nil {
			deny(c, err.Error())
			return
		}
		if cache != nil {
			revoked, err := cache.Exists(c.Request.Context(), token.RevocationKey(claims.Id)).Result()
			if err != nil {
				slog.Error("revocation lookup failed", "error", err)
			} else if revoked > 0 {
				deny(c, "session has been logged out")
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func deny(c *gin.Context, reason string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/index")
	} else {
		c.JSON(http.StatusUnauthorized, controllers.ErrorResponse{Error: reason})
	}
	c.Abort()
}
