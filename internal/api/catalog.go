package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"eprasadam/internal/domain" // Importing domain models
	"eprasadam/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// catalogTTL is how long catalog listings stay cached; the catalog only
// changes when the seed step runs, so a short TTL is plenty
const catalogTTL = 60 * time.Second

// PrasadamView is a prasadam item annotated with its temple's name and type
type PrasadamView struct {
	ID          uint    `json:"id"`          // Prasadam ID
	Name        string  `json:"name"`        // Item name
	Description string  `json:"description"` // Item description
	Price       float64 `json:"price"`       // Price in INR
	TempleName  string  `json:"temple_name"` // Owning temple's name
	TempleType  string  `json:"temple_type"` // Owning temple's type
}

// ListTemplesHandler returns all temples
func ListTemplesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()   // Context for Redis operations
		cacheKey := "catalog:temples" // Cache key for the temple list
		var temples []domain.Temple   // Slice to hold temples
		// Try the cache first
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &temples); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"success": true, "temples": temples, "cached": true})
				return
			}
		}
		// Fetch all temples from the database
		if err := db.Find(&temples).Error; err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch temples")
			return
		}
		// Cache the result
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, temples, catalogTTL)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "temples": temples, "cached": false})
	}
}

// ListPrasadamHandler returns all available prasadam items joined with their temple
func ListPrasadamHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()    // Context for Redis operations
		cacheKey := "catalog:prasadam" // Cache key for the prasadam list
		var items []PrasadamView       // Slice to hold annotated items
		// Try the cache first
		if rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &items); err == nil && found {
				c.JSON(http.StatusOK, gin.H{"success": true, "prasadam": items, "cached": true})
				return
			}
		}
		// Join available items with their temple for name and type
		err := db.Model(&domain.Prasadam{}).
			Select("prasadam.id, prasadam.name, prasadam.description, prasadam.price, temples.name AS temple_name, temples.type AS temple_type").
			Joins("JOIN temples ON temples.id = prasadam.temple_id").
			Where("prasadam.available = ?", true).
			Scan(&items).Error
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch prasadam")
			return
		}
		// Cache the result
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, items, catalogTTL)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "prasadam": items, "cached": false})
	}
}
