package earnings

import (
	"net/http"

	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
)

// EarningsController handles earnings-related HTTP requests
type EarningsController struct {
	repo EarningsRepository
}

// NewEarningsController creates a new earnings controller
func NewEarningsController(repo EarningsRepository) *EarningsController {
	return &EarningsController{repo: repo}
}

// GetSummary godoc
// @Summary Owner earnings summary
// @Description Daily, weekly and monthly revenue over the owner's grounds, counting Paid bookings only, plus the five most recent paid bookings.
// @Tags Earnings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=Summary} "Earnings summary"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Not a ground owner"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /earnings/summary [get]
func (ec *EarningsController) GetSummary(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	summary, err := ec.repo.GetOwnerSummary(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute earnings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Earnings retrieved successfully", summary)
}
