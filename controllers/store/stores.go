package storeControllers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PhornSunnich/emall-cambodia/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StoreView mirrors the storefront's store card shape: rating as a
// 1-decimal string, logo/cover as absolute URLs.
type StoreView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	CoverImage  string `json:"cover_image"`
	Rating      string `json:"rating"`
	TotalSales  int    `json:"total_sales"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
}

func storeImageURL(c *gin.Context, image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/public/stores/%s", scheme, c.Request.Host, image)
}

// GET /api/stores
func GetStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.TrimSpace(c.Query("search"))
		category := c.Query("category")

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
		if limit < 1 {
			limit = 12
		}
		if limit > 50 {
			limit = 50
		}

		query := db.Model(&models.Store{}).Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("stores.name ILIKE ? OR stores.description ILIKE ?", likePattern, likePattern)
		}
		if category != "" && category != "all" {
			query = query.
				Joins("JOIN categories ON categories.id = stores.category_id").
				Where("categories.name = ?", category)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			log.Println("GetStores count error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"stores":     []StoreView{},
				"pagination": gin.H{"current": 1, "pages": 0, "total": 0},
			})
			return
		}

		var stores []models.Store
		if err := query.
			Order("stores.total_sales DESC, stores.rating DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&stores).Error; err != nil {
			log.Println("GetStores find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"stores":     []StoreView{},
				"pagination": gin.H{"current": 1, "pages": 0, "total": 0},
			})
			return
		}

		views := make([]StoreView, 0, len(stores))
		for _, s := range stores {
			category := ""
			if s.Category != nil {
				category = s.Category.Name
			}
			views = append(views, StoreView{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Logo:        storeImageURL(c, s.Logo),
				CoverImage:  storeImageURL(c, s.CoverImage),
				Rating:      fmt.Sprintf("%.1f", s.Rating),
				TotalSales:  s.TotalSales,
				Category:    category,
				CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"stores": views,
			"pagination": gin.H{
				"current": page,
				"pages":   int(math.Ceil(float64(total) / float64(limit))),
				"total":   total,
				"limit":   limit,
			},
		})
	}
}
