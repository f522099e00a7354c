package earnings

import (
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EarningsRoutes sets up all earnings-related routes
func EarningsRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	earningsRepo := NewEarningsRepository(db)
	earningsController := NewEarningsController(earningsRepo)

	ownerRoutes := router.Group("/")
	ownerRoutes.Use(mw.AuthMiddleware(jwtSecret, db), mw.OwnerMiddleware(db))
	{
		ownerRoutes.GET("/earnings/summary", earningsController.GetSummary)
	}
}
