package routes

import (
	brandControllers "github.com/PhornSunnich/emall-cambodia/controllers/brand"
	productControllers "github.com/PhornSunnich/emall-cambodia/controllers/product"
	realestateControllers "github.com/PhornSunnich/emall-cambodia/controllers/realestate"
	storeControllers "github.com/PhornSunnich/emall-cambodia/controllers/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public browse endpoints. No auth:
// the storefront fetches these before anyone logs in.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/categories", productControllers.GetCategories(db))
		api.GET("/stores", storeControllers.GetStores(db))
		api.GET("/brands", brandControllers.GetBrands(db))
		api.GET("/real-estate", realestateControllers.GetProperties(db))
	}
}
