package productControllers

import (
	"net/http"

	"github.com/PhornSunnich/emall-cambodia/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
