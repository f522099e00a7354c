package auth

import (
	"github.com/DhruvJoshi-17/pitchbook/internal/user"
)

type OTPRequest struct {
	Phone string `json:"phone" binding:"required,e164" example:"+919876543210"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,e164" example:"+919876543210"`
	Code  string `json:"code" binding:"required,len=6" example:"123456"`
}

type OTPResponse struct {
	Message  string `json:"message"`
	MockCode string `json:"mock_code,omitempty"` // populated only when OTP_ECHO_CODE is on
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	IsNewUser   bool         `json:"is_new_user"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID               uint    `json:"id"`
	Phone            string  `json:"phone"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	ProfileImage     string  `json:"profile_image"`
	DisciplineRating float64 `json:"discipline_rating"`
	IsOwner          bool    `json:"is_owner"`
}

func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Phone:            u.Phone,
		Name:             u.Name,
		Role:             u.Role,
		ProfileImage:     u.ProfileImage,
		DisciplineRating: u.DisciplineRating,
		IsOwner:          u.IsOwner,
	}
}
