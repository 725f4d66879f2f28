package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/utils"
)

// AuthMiddleware gates admin routes behind a Bearer session token. It runs
// before any database access and responds 401 with a generic message.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("unauthorized"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("unauthorized"))
			return
		}

		claims, err := utils.ValidateJWT(key, tokenStr)
		if err != nil || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("unauthorized"))
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
