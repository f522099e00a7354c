package match

import (
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	matchRepo := NewMatchRepository(db)
	matchController := NewMatchController(matchRepo)

	router.GET("/matches", matchController.GetMatches)
	router.GET("/matches/:match_id", matchController.GetMatchByID)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/matches", matchController.CreateMatch)
		authRoutes.PUT("/matches/:match_id/join", matchController.JoinMatch)
		authRoutes.PUT("/matches/:match_id/leave", matchController.LeaveMatch)
		authRoutes.PUT("/matches/:match_id/confirm", matchController.ConfirmMatch)
		authRoutes.PUT("/matches/:match_id/cancel", matchController.CancelMatch)
	}
}
