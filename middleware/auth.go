package middleware

import (
	"net/http"
	"strings"
	"time"

	"prontoshop/pkg/context"
	"prontoshop/pkg/jwt"
	"prontoshop/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		// 快过期时旁路下发新 token，客户端自行替换
		if time.Until(claims.ExpiresAt.Time) < 30*time.Second {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				claims.Role,
				"access",
				15*time.Minute,
			)
			c.Header("X-New-Access-Token", newToken)
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole 在 Auth 之后使用
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(context.CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "insufficient role")
	}
}
