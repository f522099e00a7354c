package user

import (
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserRoutes sets up all user profile routes
func UserRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	userController := NewUserController(db)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/users/me", userController.GetMyProfile)
		authRoutes.PUT("/users/me", userController.UpdateMyProfile)
		authRoutes.GET("/users/:user_id", userController.GetUserByID)
	}
}
