package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/quikka/quikka-api/internal/config"
	"github.com/quikka/quikka-api/internal/tokens"
)

const (
	ContextUserID    = "userID"
	ContextStylistID = "stylistID"
	ContextUserRole  = "userRole"
	ContextTokenJTI  = "tokenJTI"
	ContextTokenExp  = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, revoker *tokens.Revoker) gin.HandlerFunc {
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

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
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

		userID, ok1 := claims["sub"].(float64)
		role, ok2 := claims["role"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		jti, _ := claims["jti"].(string)
		if jti != "" && revoker.IsRevoked(c.Request.Context(), jti) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserRole, role)
		c.Set(ContextTokenJTI, jti)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set(ContextTokenExp, int64(exp))
		}
		if stylistID, ok := claims["stylistId"].(float64); ok {
			c.Set(ContextStylistID, uint(stylistID))
		}

		c.Next()
	}
}

// RequireRole gates a route group on the role claim.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get(ContextUserRole); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// RequireStylist aborts unless the token carries a stylist profile id.
func RequireStylist(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextStylistID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "stylist_profile_required"})
		return 0, false
	}
	return v.(uint), true
}
