package routes

import (
	adminControllers "github.com/PhornSunnich/emall-cambodia/controllers/admin"
	productControllers "github.com/PhornSunnich/emall-cambodia/controllers/product"
	"github.com/PhornSunnich/emall-cambodia/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the
// X-API-KEY header.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", adminControllers.DeleteUser(db))

		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))
	}
}
