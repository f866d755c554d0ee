package routes

import (
	"time"

	userControllers "github.com/PhornSunnich/emall-cambodia/controllers/user"
	"github.com/PhornSunnich/emall-cambodia/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints behind the
// login/registration rate limit: 20 attempts per 15 minutes per IP.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	limiter := middleware.NewRateLimiter(20, 15*time.Minute)

	authGroup := r.Group("/api/auth")
	authGroup.Use(limiter.Limit())
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db))
	}
}
