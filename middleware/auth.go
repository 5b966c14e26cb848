package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint             `json:"user_id"`
	Role   models.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

// roleTTL maps each staff role to its token lifetime. Waiters churn through
// shifts and get short tokens; station staff keep a token for a full day's
// service; admins and managers get the longest.
var roleTTL = map[models.StaffRole]time.Duration{
	models.RoleWaiter:   1 * time.Hour,
	models.RoleKitchen:  12 * time.Hour,
	models.RoleBar:      12 * time.Hour,
	models.RoleButchery: 12 * time.Hour,
	models.RoleCashier:  12 * time.Hour,
	models.RoleAdmin:    24 * time.Hour,
	models.RoleManager:  24 * time.Hour,
}

// TokenTTL returns the token lifetime for a role, defaulting to one hour
func TokenTTL(role models.StaffRole) time.Duration {
	if ttl, ok := roleTTL[role]; ok {
		return ttl
	}
	return time.Hour
}

// GenerateToken creates a signed JWT for a staff member with a role-dependent expiry
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL(user.Role))),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the bearer token and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that the caller holds one of the allowed roles.
// A valid token with the wrong role is Forbidden, not Unauthorized.
func RoleRequired(roles ...models.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.StaffRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.StaffRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetUserID extracts the caller's user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.StaffRole {
	val, _ := c.Get("role")
	return models.StaffRole(val.(string))
}
