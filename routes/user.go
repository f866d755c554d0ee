package routes

import (
	userControllers "github.com/PhornSunnich/emall-cambodia/controllers/user"
	"github.com/PhornSunnich/emall-cambodia/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/api/user" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/api/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))    // GET /api/user
		userGroup.PUT("", userControllers.UpdateUser(db)) // PUT /api/user
	}
}
