package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"eprasadam/internal/api"        // Custom package for API handlers
	"eprasadam/internal/config"     // Custom package for configuration
	"eprasadam/internal/middleware" // Custom package for middleware
	"eprasadam/internal/payment"    // Payment provider
	"eprasadam/internal/session"    // Session store

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	// Fail fast on missing secrets or database settings
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewRedisStore(redisClient) // Server-side session store
	provider := payment.NewTestProvider()          // Test-mode payment provider

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Unprotected routes: health check and authentication
	r.GET("/api/health", api.HealthHandler())                                // Health check endpoint
	r.POST("/api/auth/register", api.RegisterHandler(db, cfg.JWTSecret))     // Registration endpoint
	r.POST("/api/auth/login", api.LoginHandler(db, sessions, cfg.JWTSecret)) // Login endpoint
	r.POST("/api/auth/logout", api.LogoutHandler(sessions))                  // Logout endpoint

	// Protected routes (bearer token or session)
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.RequireAuth(db, sessions, cfg.JWTSecret))
	apiGroup.GET("/auth/me", api.MeHandler())                                // Current user endpoint
	apiGroup.GET("/temples", api.ListTemplesHandler(db, redisClient))        // Temple listing endpoint
	apiGroup.GET("/prasadam", api.ListPrasadamHandler(db, redisClient))      // Prasadam listing endpoint
	apiGroup.POST("/create-order", api.CreateOrderHandler(db))               // Order placement endpoint
	apiGroup.POST("/verify-payment", api.VerifyPaymentHandler(db, provider)) // Payment verification endpoint
	apiGroup.GET("/my-orders", api.MyOrdersHandler(db))                      // Order history endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
