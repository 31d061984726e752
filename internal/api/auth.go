package api

import (
	"net/http" // HTTP status codes
	"strings"  // String trimming
	"time"     // Last-login timestamp

	"eprasadam/internal/domain"     // Importing domain models
	"eprasadam/internal/middleware" // Session cookie name + current user
	"eprasadam/internal/session"    // Server-side session store
	"eprasadam/internal/utils"      // Hashing and JWT utilities

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// timeLayout is the timestamp format used in user and order payloads
const timeLayout = "2006-01-02 15:04:05"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`     // Full name
	Email    string `json:"email"`    // Email address, unique
	Phone    string `json:"phone"`    // Contact phone
	Password string `json:"password"` // Plaintext password
	Address  string `json:"address"`  // Optional delivery address
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`    // Email address
	Password string `json:"password"` // Plaintext password
}

// RegisterHandler creates a new user account and issues a token
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		// Validate presence of all required fields, trimmed
		required := []struct{ name, value string }{
			{"name", req.Name},
			{"email", req.Email},
			{"phone", req.Phone},
			{"password", req.Password},
		}
		for _, f := range required {
			if strings.TrimSpace(f.value) == "" {
				// Report which field is missing
				fail(c, http.StatusBadRequest, f.name+" is required")
				return
			}
		}
		// Check if a user with this email already exists
		var existing domain.User
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			fail(c, http.StatusBadRequest, "User already exists")
			return
		}
		// Hash the password
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			// If hashing fails, return internal server error
			fail(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		// Create the user
		user := domain.User{
			Name:         req.Name,    // Full name
			Email:        req.Email,   // Email address
			Phone:        req.Phone,   // Contact phone
			PasswordHash: hash,        // Bcrypt hash
			Address:      req.Address, // Optional address
			IsActive:     true,        // Active on registration
		}
		if err := db.Create(&user).Error; err != nil {
			// A concurrent registration can still hit the unique index
			fail(c, http.StatusBadRequest, "User already exists")
			return
		}
		// Issue a token for the new user
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User registered")
		// Return user summary and token
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Registration successful",
			"user": gin.H{
				"id":    user.ID,    // User ID
				"name":  user.Name,  // Full name
				"email": user.Email, // Email address
				"phone": user.Phone, // Contact phone
			},
			"token": token, // Bearer token
		})
	}
}

// LoginHandler authenticates a user, establishes a session and returns a token
func LoginHandler(db *gorm.DB, store session.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			// Both fields are required
			fail(c, http.StatusBadRequest, "Email and password are required")
			return
		}
		var user domain.User // Fetch user by email
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			// Same message as a bad password, so emails cannot be enumerated
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		// Compare provided password with stored hash
		if !utils.CheckPassword(user.PasswordHash, req.Password) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		// Reject disabled accounts
		if !user.IsActive {
			fail(c, http.StatusForbidden, "Account is disabled")
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to generate token")
			return
		}
		// Establish the server-side session and attach its id as a cookie
		if sid, err := store.Create(c.Request.Context(), token); err == nil {
			c.SetCookie(middleware.SessionCookie, sid, int(session.TTL.Seconds()), "/", "", false, true)
		} else {
			// Session failure is not fatal; the bearer token still works
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Warn("Failed to create session")
		}
		// Update last login
		now := time.Now()
		user.LastLogin = &now
		if err := db.Model(&user).Update("last_login", now).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Warn("Failed to update last login")
		}
		// Return user profile and token
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"user": gin.H{
				"id":      user.ID,      // User ID
				"name":    user.Name,    // Full name
				"email":   user.Email,   // Email address
				"phone":   user.Phone,   // Contact phone
				"address": user.Address, // Delivery address
			},
			"token": token, // Bearer token
		})
	}
}

// LogoutHandler drops the server-side session; it always succeeds
func LogoutHandler(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Delete the session if the cookie is present
		if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
			_ = store.Delete(c.Request.Context(), sid)
		}
		// Expire the cookie on the client
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
	}
}

// MeHandler returns the authenticated user's profile
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Resolved by RequireAuth
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": gin.H{
				"id":         user.ID,                           // User ID
				"name":       user.Name,                         // Full name
				"email":      user.Email,                        // Email address
				"phone":      user.Phone,                        // Contact phone
				"address":    user.Address,                      // Delivery address
				"created_at": user.CreatedAt.Format(timeLayout), // Registration time
			},
		})
	}
}
