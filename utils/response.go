package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONPage wraps a paged listing with its total row count.
func JSONPage(c *gin.Context, code int, items interface{}, total int64, page, size int) {
	c.JSON(code, gin.H{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
		"size":    size,
	})
}
