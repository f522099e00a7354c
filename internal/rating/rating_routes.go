package rating

import (
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RatingRoutes sets up all rating-related routes
func RatingRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	ratingRepo := NewRatingRepository(db)
	ratingController := NewRatingController(ratingRepo, db)

	router.GET("/ratings/ground/:ground_id", ratingController.GetGroundRatings)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/ratings", ratingController.SubmitRating)
	}
}
