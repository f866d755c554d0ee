package brandControllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/PhornSunnich/emall-cambodia/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BrandView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// GET /api/brands
func GetBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Order("name").Find(&brands).Error; err != nil {
			log.Println("GetBrands error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"brands": []BrandView{}})
			return
		}

		views := make([]BrandView, 0, len(brands))
		for _, b := range brands {
			logo := b.Logo
			if logo != "" && !strings.HasPrefix(logo, "http://") && !strings.HasPrefix(logo, "https://") {
				scheme := "http"
				if c.Request.TLS != nil {
					scheme = "https"
				}
				logo = fmt.Sprintf("%s://%s/public/brands/%s", scheme, c.Request.Host, logo)
			}
			views = append(views, BrandView{ID: b.ID, Name: b.Name, Logo: logo})
		}

		c.JSON(http.StatusOK, gin.H{"brands": views})
	}
}
