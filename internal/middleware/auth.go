package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clinicstack/clinic-manager/internal/config"
	"github.com/clinicstack/clinic-manager/internal/tenant"
)

const ContextScope = "tenantScope"

// AuthMiddleware validates the bearer token and resolves the principal's
// tenant scope. A token without a workspace claim is rejected here, before
// any handler can reach the store.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		scope, err := tenant.FromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing_workspace"})
			return
		}

		c.Set(ContextScope, scope)

		c.Next()
	}
}

// Scope returns the tenant scope resolved by AuthMiddleware. Panics when
// called outside a secured route, same as any missing context key.
func Scope(c *gin.Context) tenant.Scope {
	return c.MustGet(ContextScope).(tenant.Scope)
}
