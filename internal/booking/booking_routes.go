package booking

import (
	"github.com/DhruvJoshi-17/pitchbook/config"
	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	mw "github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookingRoutes sets up all booking-related routes
func BookingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	bookingRepo := NewBookingRepository(db)
	groundRepo := ground.NewGroundRepository(db)
	bookingController := NewBookingController(bookingRepo, groundRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/bookings", bookingController.CreateBooking)
		authRoutes.POST("/bookings/verify-payment", bookingController.VerifyPayment)
		authRoutes.POST("/bookings/:booking_id/fail-payment", bookingController.FailPayment)
		authRoutes.GET("/bookings/my", bookingController.GetMyBookings)
		authRoutes.GET("/bookings/ground/:ground_id", bookingController.GetGroundBookings)
	}
}
