package team

import (
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	router.GET("/teams", teamController.GetTeams)
	router.GET("/teams/:team_id", teamController.GetTeamByID)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.GET("/teams/my", teamController.GetMyTeams)
		authRoutes.PUT("/teams/:team_id/join", teamController.JoinTeam)
		authRoutes.PUT("/teams/:team_id/leave", teamController.LeaveTeam)
		authRoutes.PUT("/teams/:team_id/disband", teamController.DisbandTeam)
	}
}
