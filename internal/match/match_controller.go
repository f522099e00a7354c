package match

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo MatchRepository
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository) *MatchController {
	return &MatchController{repo: repo}
}

// --- DTOs for requests ---

type CreateMatchRequest struct {
	TeamName      string    `json:"team_name" binding:"required,min=2,max=50"`
	MatchType     string    `json:"match_type" binding:"required,oneof=Tennis Leather Box"`
	PlayersNeeded int       `json:"players_needed" binding:"required,gte=1,lte=11"`
	GroundID      *uint     `json:"ground_id"`
	WhatsappLink  string    `json:"whatsapp_link" binding:"omitempty,uri"`
	StartTime     time.Time `json:"start_time" binding:"required"`
}

// CreateMatch godoc
// @Summary Host a match
// @Description Creates an Open match with the authenticated user as creator and first roster entry.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match data"
// @Success 201 {object} responses.SuccessResponse{data=Match} "Match created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	m := Match{
		CreatorID:     userID,
		TeamName:      req.TeamName,
		MatchType:     req.MatchType,
		PlayersNeeded: req.PlayersNeeded,
		GroundID:      req.GroundID,
		WhatsappLink:  req.WhatsappLink,
		StartTime:     req.StartTime,
		Status:        StatusOpen,
	}
	if err := mc.repo.CreateMatch(&m, userID); err != nil {
		responses.InternalServerError(c, "Failed to create match: "+err.Error())
		return
	}

	created, _ := mc.repo.GetMatchByID(m.ID)
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", created)
}

// GetMatches godoc
// @Summary List open matches
// @Description Retrieves open matches with optional type and date filters.
// @Tags Matches
// @Produce json
// @Param type query string false "Match type (Tennis, Leather, Box)"
// @Param date query string false "Only matches starting on/after this RFC3339 time"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match} "Open matches"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
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

	var from *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			responses.BadRequest(c, "Invalid date, expected RFC3339")
			return
		}
		from = &parsed
	}

	matches, total, err := mc.repo.GetOpenMatches(c.Query("type"), from, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve matches: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get match details
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Match details"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", m)
}

// JoinMatch godoc
// @Summary Join an open match
// @Description Appends the caller to the roster. The match auto-promotes to Confirmed once enough players have joined.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Joined"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match not open, already joined, or roster full"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /matches/{match_id}/join [put]
func (mc *MatchController) JoinMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}

	if err := mc.repo.Join(uint(matchID), userID); err != nil {
		switch {
		case errors.Is(err, ErrMatchNotOpen):
			responses.Conflict(c, "Match is no longer open")
		case errors.Is(err, ErrAlreadyJoined):
			responses.Conflict(c, "You have already joined this match")
		case errors.Is(err, ErrMatchFull):
			responses.Conflict(c, "Match roster is full")
		default:
			responses.InternalServerError(c, "Failed to join match: "+err.Error())
		}
		return
	}

	updated, _ := mc.repo.GetMatchByID(uint(matchID))
	responses.SendSuccess(c, http.StatusOK, "Joined match successfully", updated)
}

// LeaveMatch godoc
// @Summary Leave a match
// @Description Removes the caller from the roster. The creator cannot leave; a Confirmed match stays Confirmed.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Left the match"
// @Failure 403 {object} responses.ErrorResponse "Creator cannot leave"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Not part of this match"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /matches/{match_id}/leave [put]
func (mc *MatchController) LeaveMatch(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if m.CreatorID == userID {
		responses.Forbidden(c, "The creator cannot leave the match. Cancel it instead.")
		return
	}

	if err := mc.repo.Leave(uint(matchID), userID); err != nil {
		if errors.Is(err, ErrNotJoined) {
			responses.Conflict(c, "You are not part of this match")
			return
		}
		responses.InternalServerError(c, "Failed to leave match: "+err.Error())
		return
	}

	updated, _ := mc.repo.GetMatchByID(uint(matchID))
	responses.SendSuccess(c, http.StatusOK, "Left match successfully", updated)
}

// ConfirmMatch godoc
// @Summary Confirm a match
// @Description Creator-only override that forces the match to Confirmed regardless of headcount. A cancelled match cannot be revived.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Match confirmed"
// @Failure 403 {object} responses.ErrorResponse "Only the creator can confirm"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match has been cancelled"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /matches/{match_id}/confirm [put]
func (mc *MatchController) ConfirmMatch(c *gin.Context) {
	mc.setStatusAsCreator(c, StatusConfirmed, "Match confirmed successfully")
}

// CancelMatch godoc
// @Summary Cancel a match
// @Description Creator-only. Cancelling an already cancelled match is a no-op.
// @Tags Matches
// @Produce json
// @Param match_id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match} "Match cancelled"
// @Failure 403 {object} responses.ErrorResponse "Only the creator can cancel"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /matches/{match_id}/cancel [put]
func (mc *MatchController) CancelMatch(c *gin.Context) {
	mc.setStatusAsCreator(c, StatusCancelled, "Match cancelled successfully")
}

func (mc *MatchController) setStatusAsCreator(c *gin.Context, status MatchStatus, message string) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(matchID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve match: "+err.Error())
		return
	}
	if m == nil {
		responses.NotFound(c, "Match")
		return
	}
	if m.CreatorID != userID {
		responses.Forbidden(c, "Only the creator can modify this match")
		return
	}

	updated, err := mc.repo.SetStatus(uint(matchID), status)
	if err != nil {
		if errors.Is(err, ErrMatchCancelled) {
			responses.Conflict(c, "Match has been cancelled")
			return
		}
		responses.InternalServerError(c, "Failed to update match: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, message, updated)
}
