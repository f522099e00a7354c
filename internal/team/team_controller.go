package team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=50"`
	MatchType    string `json:"match_type" binding:"required,oneof=Tennis Leather Box"`
	MaxSize      int    `json:"max_size" binding:"omitempty,gte=2,lte=25"`
	WhatsappLink string `json:"whatsapp_link" binding:"omitempty,uri"`
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates an Active team with the authenticated user as captain and first member.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team data"
// @Success 201 {object} responses.SuccessResponse{data=Team} "Team created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if req.MaxSize == 0 {
		req.MaxSize = 11
	}

	t := Team{
		Name:         req.Name,
		MatchType:    req.MatchType,
		CaptainID:    userID,
		MaxSize:      req.MaxSize,
		WhatsappLink: req.WhatsappLink,
		Status:       StatusActive,
	}
	if err := tc.repo.CreateTeam(&t, userID); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}

	created, _ := tc.repo.GetTeamByID(t.ID)
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", created)
}

// GetTeams godoc
// @Summary List active teams
// @Tags Teams
// @Produce json
// @Param type query string false "Match type (Tennis, Leather, Box)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team} "Active teams"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
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

	teams, total, err := tc.repo.GetTeams(c.Query("type"), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get team details
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", t)
}

// GetMyTeams godoc
// @Summary List the caller's teams
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Team} "Caller's teams"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams/my [get]
func (tc *TeamController) GetMyTeams(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	teams, err := tc.repo.GetTeamsByUserID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// JoinTeam godoc
// @Summary Join a team
// @Description Admits the caller if the team is Active and below max size.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Joined"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Team not active, already a member, or full"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/join [put]
func (tc *TeamController) JoinTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	if err := tc.repo.Join(uint(teamID), userID); err != nil {
		switch {
		case errors.Is(err, ErrTeamNotActive):
			responses.Conflict(c, "Team is no longer active")
		case errors.Is(err, ErrAlreadyMember):
			responses.Conflict(c, "You are already a member of this team")
		case errors.Is(err, ErrTeamFull):
			responses.Conflict(c, "Team is full")
		default:
			responses.InternalServerError(c, "Failed to join team: "+err.Error())
		}
		return
	}

	updated, _ := tc.repo.GetTeamByID(uint(teamID))
	responses.SendSuccess(c, http.StatusOK, "Joined team successfully", updated)
}

// LeaveTeam godoc
// @Summary Leave a team
// @Description Removes the caller's membership. The captain cannot leave and must disband instead.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Left the team"
// @Failure 403 {object} responses.ErrorResponse "Captain cannot leave"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Not a member of this team"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/leave [put]
func (tc *TeamController) LeaveTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	if t.CaptainID == userID {
		responses.Forbidden(c, "The captain cannot leave the team. Disband it instead.")
		return
	}

	if err := tc.repo.Leave(uint(teamID), userID); err != nil {
		if errors.Is(err, ErrNotMember) {
			responses.Conflict(c, "You are not a member of this team")
			return
		}
		responses.InternalServerError(c, "Failed to leave team: "+err.Error())
		return
	}

	updated, _ := tc.repo.GetTeamByID(uint(teamID))
	responses.SendSuccess(c, http.StatusOK, "Left team successfully", updated)
}

// DisbandTeam godoc
// @Summary Disband a team
// @Description Captain-only. Marks the team Disbanded; disbanding twice is a no-op.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team disbanded"
// @Failure 403 {object} responses.ErrorResponse "Only the captain can disband"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/disband [put]
func (tc *TeamController) DisbandTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return
	}

	t, err := tc.repo.GetTeamByID(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}
	if t.CaptainID != userID {
		responses.Forbidden(c, "Only the captain can disband this team")
		return
	}

	disbanded, err := tc.repo.Disband(uint(teamID))
	if err != nil {
		responses.InternalServerError(c, "Failed to disband team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team disbanded successfully", disbanded)
}
