package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhruvJoshi-17/pitchbook/config"
	"github.com/DhruvJoshi-17/pitchbook/internal/auth"
	"github.com/DhruvJoshi-17/pitchbook/internal/booking"
	"github.com/DhruvJoshi-17/pitchbook/internal/earnings"
	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	"github.com/DhruvJoshi-17/pitchbook/internal/match"
	"github.com/DhruvJoshi-17/pitchbook/internal/rating"
	"github.com/DhruvJoshi-17/pitchbook/internal/team"
	"github.com/DhruvJoshi-17/pitchbook/internal/user"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "PitchBook API", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	jwtSecret := appConfig.JWT.AccessTokenSecret

	// API routes
	api := r.Group("/api")
	auth.AuthRoutes(api, db, appConfig)
	user.UserRoutes(api, db, jwtSecret)
	ground.GroundRoutes(api, db, appConfig, jwtSecret)
	booking.BookingRoutes(api, db, appConfig, jwtSecret)
	match.MatchRoutes(api, db, jwtSecret)
	team.TeamRoutes(api, db, jwtSecret)
	rating.RatingRoutes(api, db, jwtSecret)
	earnings.EarningsRoutes(api, db, jwtSecret)

	return r
}
