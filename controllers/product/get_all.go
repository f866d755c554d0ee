package productControllers

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

// ProductView is the wire shape the storefront expects: price as a
// 2-decimal string, category flattened to its name.
type ProductView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

func toView(c *gin.Context, p models.Product) ProductView {
	category := "Uncategorized"
	if p.Category != nil && p.Category.Name != "" {
		category = p.Category.Name
	}
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       fmt.Sprintf("%.2f", p.Price),
		Stock:       p.Stock,
		Image:       absoluteImageURL(c, "products", p.Image),
		Category:    category,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// absoluteImageURL prefixes a stored file name with the request host.
// Already-absolute URLs pass through untouched.
func absoluteImageURL(c *gin.Context, kind, image string) string {
	if image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/public/%s/%s", scheme, c.Request.Host, kind, image)
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
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
		if limit > 100 {
			limit = 100
		}

		query := db.Model(&models.Product{}).Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", likePattern, likePattern)
		}
		if category != "" && category != "all" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", category)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			log.Println("GetProducts count error:", err)
			// The storefront expects an empty page, not a hard failure
			c.JSON(http.StatusOK, gin.H{
				"products":   []ProductView{},
				"pagination": Pagination{Current: 1, Pages: 0, Total: 0, Limit: limit},
			})
			return
		}

		var products []models.Product
		if err := query.
			Order("products.created_at DESC").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&products).Error; err != nil {
			log.Println("GetProducts find error:", err)
			c.JSON(http.StatusOK, gin.H{
				"products":   []ProductView{},
				"pagination": Pagination{Current: 1, Pages: 0, Total: 0, Limit: limit},
			})
			return
		}

		views := make([]ProductView, 0, len(products))
		for _, p := range products {
			views = append(views, toView(c, p))
		}

		c.JSON(http.StatusOK, gin.H{
			"products": views,
			"pagination": Pagination{
				Current: page,
				Pages:   int(math.Ceil(float64(total) / float64(limit))),
				Total:   total,
				Limit:   limit,
			},
		})
	}
}
