package middleware

import (
	"errors"   // errors.Is for jwt error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"eprasadam/internal/domain"  // Importing domain models
	"eprasadam/internal/session" // Server-side session store
	"eprasadam/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT error sentinels
	"gorm.io/gorm"                 // GORM ORM library
)

// SessionCookie is the cookie carrying the opaque session id
const SessionCookie = "session_id"

// userKey is the gin context key holding the resolved user
const userKey = "currentUser"

// RequireAuth extracts a bearer token from the Authorization header, falling
// back to the session cookie, verifies it and resolves the acting user from
// the database before delegating to the handler
func RequireAuth(db *gorm.DB, store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := "" // Extracted token
		// Header first: Authorization: Bearer <token>
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
		// Session fallback: resolve the session cookie through the store
		if tokenStr == "" {
			if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
				if t, err := store.Get(c.Request.Context(), id); err == nil {
					tokenStr = t // Use the session's stored token
				}
			}
		}
		// No credential on either carrier
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token is missing"})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Verify signature and expiry
		if err != nil {
			msg := "Invalid token" // Malformed or bad signature
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired" // Past its embedded expiry
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": msg})
			return
		}
		var user domain.User // Resolve the embedded user id to a live row
		if err := db.First(&user, claims.UserID).Error; err != nil {
			// The token is valid but the user no longer resolves
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.Set(userKey, &user) // Store the acting user in context
		c.Next()              // Proceed to the next handler
	}
}

// CurrentUser returns the user resolved by RequireAuth for this request
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u // Resolved user
		}
	}
	return nil // Only reachable on routes missing the middleware
}
