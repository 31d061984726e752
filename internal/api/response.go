package api

import "github.com/gin-gonic/gin" // Gin web framework

// fail writes the standard error envelope under the "message" key
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// failErr writes the error envelope used by the order endpoints, which report
// unexpected failures under the "error" key
func failErr(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
