package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/curiokart/CurioKart/models"
	"github.com/curiokart/CurioKart/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthMiddleware validates the bearer token issued by the hosted identity
// provider and places the asserted user in the request context. This service
// never issues or refreshes tokens itself.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.LogError("Invalid token claims")
			utils.Unauthorized(c, "Invalid token claims")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			utils.LogError("Token missing subject claim")
			utils.Unauthorized(c, "Invalid token claims")
			c.Abort()
			return
		}

		user := models.User{
			ID:    sub,
			Name:  stringClaim(claims, "name"),
			Email: stringClaim(claims, "email"),
			Phone: stringClaim(claims, "phone"),
		}
		if role, _ := claims["role"].(string); role == "admin" {
			user.IsAdmin = true
		}

		c.Set("user", user)
		utils.LogDebug("User %s authenticated", user.ID)
		c.Next()
	}
}

// AdminMiddleware allows only tokens carrying the admin role. It must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}
		user, ok := userVal.(models.User)
		if !ok || !user.IsAdmin {
			utils.LogError("Non-admin access attempt by user %v", userVal)
			utils.Forbidden(c, utils.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
