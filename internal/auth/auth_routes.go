package auth

import (
	"time"

	"github.com/DhruvJoshi-17/pitchbook/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthRoutes sets up the OTP login routes
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	otps := NewOTPStore(time.Duration(appConfig.OTP.TTLMinutes)*time.Minute, appConfig.OTP.MaxAttempts)
	authController := NewAuthController(db, otps, appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/send-otp", authController.SendOTP)
		authGroup.POST("/verify-otp", authController.VerifyOTP)
	}
}
