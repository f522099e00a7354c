package rating

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/internal/user"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RatingController handles rating-related HTTP requests
type RatingController struct {
	repo RatingRepository
	db   *gorm.DB
}

// NewRatingController creates a new rating controller
func NewRatingController(repo RatingRepository, db *gorm.DB) *RatingController {
	return &RatingController{repo: repo, db: db}
}

// --- DTOs for requests ---

type SubmitRatingRequest struct {
	ToUserID   *uint  `json:"to_user_id"`
	ToGroundID *uint  `json:"to_ground_id"`
	MatchID    *uint  `json:"match_id"`
	Score      int    `json:"score" binding:"required,gte=1,lte=5"`
	Comment    string `json:"comment" binding:"omitempty,max=500"`
}

// SubmitRating godoc
// @Summary Rate a player or a ground
// @Description Stores a 1-5 rating for exactly one target and recomputes the target's average. A target may be rated once per match by the same rater.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param rating body SubmitRatingRequest true "Rating data"
// @Success 201 {object} responses.SuccessResponse{data=Rating} "Rating submitted"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Target not found"
// @Failure 409 {object} responses.ErrorResponse "Already rated for this match"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /ratings [post]
func (rc *RatingController) SubmitRating(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if (req.ToUserID == nil) == (req.ToGroundID == nil) {
		responses.BadRequest(c, "Exactly one of to_user_id or to_ground_id is required")
		return
	}

	if req.ToUserID != nil {
		if *req.ToUserID == userID {
			responses.BadRequest(c, "You cannot rate yourself")
			return
		}
		var target user.User
		if err := rc.db.First(&target, *req.ToUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.NotFound(c, "User")
				return
			}
			responses.InternalServerError(c, "Failed to retrieve user: "+err.Error())
			return
		}
	} else {
		var target ground.Ground
		if err := rc.db.First(&target, *req.ToGroundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.NotFound(c, "Ground")
				return
			}
			responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
			return
		}
	}

	rt := Rating{
		FromUserID: userID,
		ToUserID:   req.ToUserID,
		ToGroundID: req.ToGroundID,
		MatchID:    req.MatchID,
		Score:      req.Score,
		Comment:    req.Comment,
	}
	if err := rc.repo.SubmitRating(&rt); err != nil {
		if errors.Is(err, ErrDuplicateRating) {
			responses.Conflict(c, "You have already rated this target for this match")
			return
		}
		responses.InternalServerError(c, "Failed to submit rating: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Rating submitted successfully", rt)
}

// GetGroundRatings godoc
// @Summary List ratings for a ground
// @Tags Ratings
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Rating} "Ground's ratings"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /ratings/ground/{ground_id} [get]
func (rc *RatingController) GetGroundRatings(c *gin.Context) {
	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	ratings, total, err := rc.repo.GetRatingsByGroundID(uint(groundID), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ratings: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Ratings retrieved successfully", ratings, total, page, limit)
}
