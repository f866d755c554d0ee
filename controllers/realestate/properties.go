package realestateControllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/PhornSunnich/emall-cambodia/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const placeholderImage = "https://via.placeholder.com/400x300/198754/white?text=No+Image"

type PropertyView struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Location  string  `json:"location"`
	Type      string  `json:"type"`
	Price     string  `json:"price"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Size      float64 `json:"size"`
	Image     string  `json:"image"`
	Featured  bool    `json:"featured"`
}

// GET /api/real-estate
func GetProperties(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.TrimSpace(c.Query("search"))
		propType := c.Query("type")

		query := db.Model(&models.Property{})

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("title ILIKE ? OR location ILIKE ?", likePattern, likePattern)
		}
		if propType != "" && propType != "all" {
			query = query.Where("type = ?", propType)
		}

		var properties []models.Property
		if err := query.Order("featured DESC, created_at DESC").Find(&properties).Error; err != nil {
			log.Println("GetProperties error:", err)
			// Degrade to an empty listing
			c.JSON(http.StatusOK, gin.H{"properties": []PropertyView{}})
			return
		}

		views := make([]PropertyView, 0, len(properties))
		for _, p := range properties {
			image := p.Image
			if image == "" {
				image = placeholderImage
			}
			views = append(views, PropertyView{
				ID:        p.ID,
				Title:     p.Title,
				Location:  p.Location,
				Type:      p.Type,
				Price:     fmt.Sprintf("%.2f", p.Price),
				Bedrooms:  p.Bedrooms,
				Bathrooms: p.Bathrooms,
				Size:      p.Size,
				Image:     image,
				Featured:  p.Featured,
			})
		}

		c.JSON(http.StatusOK, gin.H{"properties": views})
	}
}
