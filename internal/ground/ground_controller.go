package ground

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// GroundController handles ground-related HTTP requests
type GroundController struct {
	repo GroundRepository
}

// NewGroundController creates a new ground controller
func NewGroundController(repo GroundRepository) *GroundController {
	return &GroundController{repo: repo}
}

// --- DTOs for requests ---

type CreateGroundRequest struct {
	Name         string   `json:"name" binding:"required,min=3,max=100"`
	GroundType   string   `json:"ground_type" binding:"omitempty,oneof='Open Ground' 'Net Practice' 'Box Cricket' 'Turf Ground' 'Stadium' 'Indoor'"`
	Images       []string `json:"images" binding:"omitempty,dive,uri"`
	Amenities    []string `json:"amenities"`
	PricePerHour float64  `json:"price_per_hour" binding:"required,gte=0"`
	Address      string   `json:"address" binding:"max=200"`
}

type UpdateGroundRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=3,max=100"`
	GroundType   *string   `json:"ground_type" binding:"omitempty,oneof='Open Ground' 'Net Practice' 'Box Cricket' 'Turf Ground' 'Stadium' 'Indoor'"`
	Images       *[]string `json:"images" binding:"omitempty,dive,uri"`
	Amenities    *[]string `json:"amenities"`
	PricePerHour *float64  `json:"price_per_hour" binding:"omitempty,gte=0"`
	Address      *string   `json:"address" binding:"omitempty,max=200"`
}

type BlockSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
}

func marshalList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// CreateGround godoc
// @Summary Register a new ground
// @Description Creates a ground owned by the authenticated owner with an empty slot ledger.
// @Tags Grounds
// @Accept json
// @Produce json
// @Param ground body CreateGroundRequest true "Ground data"
// @Success 201 {object} responses.SuccessResponse{data=Ground} "Ground created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Not an owner"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /grounds [post]
func (gc *GroundController) CreateGround(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	g := Ground{
		OwnerID:      userID,
		Name:         req.Name,
		GroundType:   req.GroundType,
		Images:       marshalList(req.Images),
		Amenities:    marshalList(req.Amenities),
		PricePerHour: req.PricePerHour,
		Address:      req.Address,
	}
	if g.GroundType == "" {
		g.GroundType = TypeOpenGround
	}

	if err := gc.repo.CreateGround(&g); err != nil {
		responses.InternalServerError(c, "Failed to create ground: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Ground created successfully", g)
}

// GetAllGrounds godoc
// @Summary List grounds
// @Description Retrieves all grounds with pagination.
// @Tags Grounds
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Ground} "List of grounds"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /grounds [get]
func (gc *GroundController) GetAllGrounds(c *gin.Context) {
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

	grounds, total, err := gc.repo.GetAllGrounds(page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve grounds: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Grounds retrieved successfully", grounds, total, page, limit)
}

// GetGroundByID godoc
// @Summary Get a ground by ID
// @Description Retrieves a ground with its slot ledger.
// @Tags Grounds
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Success 200 {object} responses.SuccessResponse{data=Ground} "Ground details"
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /grounds/{ground_id} [get]
func (gc *GroundController) GetGroundByID(c *gin.Context) {
	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ground retrieved successfully", g)
}

// GetMyGrounds godoc
// @Summary List grounds owned by the caller
// @Tags Grounds
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Ground} "Owner's grounds"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /grounds/my [get]
func (gc *GroundController) GetMyGrounds(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	grounds, err := gc.repo.GetGroundsByOwnerID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve grounds: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Grounds retrieved successfully", grounds)
}

// UpdateGround godoc
// @Summary Update a ground
// @Description Updates ground fields. Only the owning account may update.
// @Tags Grounds
// @Accept json
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Param ground body UpdateGroundRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Ground} "Ground updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Not the owner of this ground"
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /grounds/{ground_id} [put]
func (gc *GroundController) UpdateGround(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}
	if g.OwnerID != userID {
		responses.Forbidden(c, "Not authorized to update this ground")
		return
	}

	var req UpdateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.GroundType != nil {
		g.GroundType = *req.GroundType
	}
	if req.Images != nil {
		g.Images = marshalList(*req.Images)
	}
	if req.Amenities != nil {
		g.Amenities = marshalList(*req.Amenities)
	}
	if req.PricePerHour != nil {
		g.PricePerHour = *req.PricePerHour
	}
	if req.Address != nil {
		g.Address = *req.Address
	}

	if err := gc.repo.UpdateGround(g); err != nil {
		responses.InternalServerError(c, "Failed to update ground: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ground updated successfully", g)
}

// BlockSlot godoc
// @Summary Block a time window on a ground
// @Description Appends a Blocked slot so the window cannot be booked. Fails if the window overlaps an existing Reserved/Blocked slot or a live booking.
// @Tags Grounds
// @Accept json
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Param slot body BlockSlotRequest true "Window to block"
// @Success 201 {object} responses.SuccessResponse{data=Slot} "Slot blocked"
// @Failure 400 {object} responses.ErrorResponse "Invalid window"
// @Failure 403 {object} responses.ErrorResponse "Not the owner of this ground"
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Failure 409 {object} responses.ErrorResponse "Window overlaps an existing slot or booking"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /grounds/{ground_id}/slots/block [post]
func (gc *GroundController) BlockSlot(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}
	if g.OwnerID != userID {
		responses.Forbidden(c, "Not authorized to manage slots for this ground")
		return
	}

	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	slot, err := gc.repo.BlockSlot(uint(groundID), req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, ErrWindowUnavailable) {
			responses.Conflict(c, "Window overlaps an existing slot or booking")
			return
		}
		responses.InternalServerError(c, "Failed to block slot: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Slot blocked successfully", slot)
}

// UnblockSlot godoc
// @Summary Remove a blocked slot
// @Description Deletes a Blocked ledger entry. Reserved slots cannot be removed this way.
// @Tags Grounds
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Param slot_id path uint true "Slot ID"
// @Success 200 {object} responses.SuccessResponse "Slot removed"
// @Failure 403 {object} responses.ErrorResponse "Not the owner of this ground"
// @Failure 404 {object} responses.ErrorResponse "Ground or slot not found"
// @Failure 409 {object} responses.ErrorResponse "Slot is not a blocked slot"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /grounds/{ground_id}/slots/{slot_id} [delete]
func (gc *GroundController) UnblockSlot(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	groundID, err := strconv.ParseUint(c.Param("ground_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid ground ID")
		return
	}
	slotID, err := strconv.ParseUint(c.Param("slot_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid slot ID")
		return
	}

	g, err := gc.repo.GetGroundByID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}
	if g.OwnerID != userID {
		responses.Forbidden(c, "Not authorized to manage slots for this ground")
		return
	}

	slot, err := gc.repo.GetSlot(uint(groundID), uint(slotID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve slot: "+err.Error())
		return
	}
	if slot == nil {
		responses.NotFound(c, "Slot")
		return
	}
	if slot.Status != SlotBlocked {
		responses.Conflict(c, "Only blocked slots can be removed")
		return
	}

	if err := gc.repo.RemoveBlockedSlot(uint(groundID), uint(slotID)); err != nil {
		responses.InternalServerError(c, "Failed to remove slot: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Slot removed successfully", nil)
}
