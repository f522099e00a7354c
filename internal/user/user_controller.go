package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController handles user profile HTTP requests
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// --- DTOs for requests ---

type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=50"`
	Role         *string `json:"role" binding:"omitempty,oneof=Batsman Bowler All-rounder Wicketkeeper"`
	ProfileImage *string `json:"profile_image" binding:"omitempty,uri"`
	IsOwner      *bool   `json:"is_owner"`
}

// GetMyProfile godoc
// @Summary Get the caller's profile
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=User} "Profile"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (uc *UserController) GetMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var u User
	if err := uc.db.First(&u, userID).Error; err != nil {
		responses.InternalServerError(c, "Failed to retrieve profile: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", u)
}

// UpdateMyProfile godoc
// @Summary Update the caller's profile
// @Description Updates name, playing role, profile image or owner flag. Only provided fields change.
// @Tags Users
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} responses.SuccessResponse{data=User} "Profile updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users/me [put]
func (uc *UserController) UpdateMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.IsOwner != nil {
		updates["is_owner"] = *req.IsOwner
	}
	if len(updates) == 0 {
		responses.BadRequest(c, "No fields to update")
		return
	}

	if err := uc.db.Model(&User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		responses.InternalServerError(c, "Failed to update profile: "+err.Error())
		return
	}

	var u User
	if err := uc.db.First(&u, userID).Error; err != nil {
		responses.InternalServerError(c, "Failed to retrieve profile: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully", u)
}

// GetUserByID godoc
// @Summary Get a user's public profile
// @Tags Users
// @Produce json
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=User} "User profile"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users/{user_id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	var u User
	if err := uc.db.First(&u, uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to retrieve user: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", u)
}
