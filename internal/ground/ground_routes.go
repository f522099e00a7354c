package ground

import (
	"github.com/DhruvJoshi-17/pitchbook/config"
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GroundRoutes sets up all ground-related routes
func GroundRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	groundRepo := NewGroundRepository(db)
	groundController := NewGroundController(groundRepo)

	// Public ground routes
	router.GET("/grounds", groundController.GetAllGrounds)
	router.GET("/grounds/:ground_id", groundController.GetGroundByID)

	// Owner-only management routes
	ownerRoutes := router.Group("/")
	ownerRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	ownerRoutes.Use(mw.OwnerMiddleware(db))
	{
		ownerRoutes.POST("/grounds", groundController.CreateGround)
		ownerRoutes.GET("/grounds/my", groundController.GetMyGrounds)
		ownerRoutes.PUT("/grounds/:ground_id", groundController.UpdateGround)
		ownerRoutes.POST("/grounds/:ground_id/slots/block", groundController.BlockSlot)
		ownerRoutes.DELETE("/grounds/:ground_id/slots/:slot_id", groundController.UnblockSlot)
	}
}
