package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"

	"github.com/DhruvJoshi-17/pitchbook/config"
	"github.com/DhruvJoshi-17/pitchbook/internal/user"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/DhruvJoshi-17/pitchbook/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController handles phone-OTP login
type AuthController struct {
	db        *gorm.DB
	otps      *OTPStore
	appConfig *config.Config
}

func NewAuthController(db *gorm.DB, otps *OTPStore, appConfig *config.Config) *AuthController {
	return &AuthController{db: db, otps: otps, appConfig: appConfig}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// SendOTP godoc
// @Summary Send a login OTP to a phone number
// @Description Generates a 6-digit one-time code for the phone. The code expires after the configured TTL and is single-use.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OTPRequest true "Phone number in E.164 format"
// @Success 200 {object} responses.SuccessResponse{data=OTPResponse} "OTP sent"
// @Failure 400 {object} responses.ErrorResponse "Invalid phone"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/send-otp [post]
func (ac *AuthController) SendOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	code, err := generateCode()
	if err != nil {
		responses.InternalServerError(c, "Failed to generate OTP")
		return
	}
	if err := ac.otps.Put(req.Phone, code); err != nil {
		responses.InternalServerError(c, "Failed to store OTP")
		return
	}

	resp := OTPResponse{Message: "OTP sent successfully"}
	if ac.appConfig.OTP.EchoCode {
		// SMS delivery is out of scope; surface the code for dev clients.
		log.Printf("Mock SMS to %s: your PitchBook OTP is %s", req.Phone, code)
		resp.MockCode = code
	}
	responses.SendSuccess(c, http.StatusOK, "OTP sent successfully", resp)
}

// VerifyOTP godoc
// @Summary Verify an OTP and log in
// @Description Verifies the code, creating the user on first login, and returns an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Phone and code"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse} "Logged in"
// @Failure 400 {object} responses.ErrorResponse "Missing, expired or wrong code"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/verify-otp [post]
func (ac *AuthController) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := ac.otps.Verify(req.Phone, req.Code); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	var u user.User
	isNewUser := false
	err := ac.db.Where("phone = ?", req.Phone).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = user.User{
			Phone: req.Phone,
			Name:  "New User", // placeholder until profile setup
		}
		if err := ac.db.Create(&u).Error; err != nil {
			responses.InternalServerError(c, "Failed to create user: "+err.Error())
			return
		}
		isNewUser = true
	} else if err != nil {
		responses.InternalServerError(c, "Failed to look up user: "+err.Error())
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.IsOwner, ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue token: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken: accessToken,
		IsNewUser:   isNewUser,
		User:        FilterUserRecord(&u),
	})
}
