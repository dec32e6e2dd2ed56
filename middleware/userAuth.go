package middleware

import (
	"net/http"
	"strings"

	userRepo "staycation/database/repository/user"
	"staycation/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}

// JWTAuthUserMiddleware resolves the current user from a Bearer token and
// stores it under "userID" and "user". Tokens are issued elsewhere.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.GetLogger().Error("current user lookup failed", zap.String("userId", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		if usr == nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", usr.ID)
		c.Set("user", usr)
		c.Next()
	}
}
