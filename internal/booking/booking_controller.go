package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	"github.com/DhruvJoshi-17/pitchbook/internal/middleware"
	"github.com/DhruvJoshi-17/pitchbook/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	repo       BookingRepository
	groundRepo ground.GroundRepository
}

// NewBookingController creates a new booking controller
func NewBookingController(repo BookingRepository, groundRepo ground.GroundRepository) *BookingController {
	return &BookingController{repo: repo, groundRepo: groundRepo}
}

// --- DTOs for requests ---

type CreateBookingRequest struct {
	GroundID  uint      `json:"ground_id" binding:"required"`
	SlotStart time.Time `json:"slot_start" binding:"required"`
	SlotEnd   time.Time `json:"slot_end" binding:"required,gtfield=SlotStart"`
	Amount    float64   `json:"amount" binding:"gte=0"`
}

type VerifyPaymentRequest struct {
	BookingID      uint   `json:"booking_id" binding:"required"`
	TransactionRef string `json:"transaction_ref" binding:"required"`
}

type CreateBookingResponse struct {
	Booking      Booking `json:"booking"`
	PaymentToken string  `json:"payment_token"` // mock gateway handle, the gateway protocol is out of scope
}

// CreateBooking godoc
// @Summary Reserve a ground time slot
// @Description Creates a Pending booking if no Paid/Pending booking or blocked slot overlaps the window. The reservation is provisional until payment is verified.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} responses.SuccessResponse{data=CreateBookingResponse} "Booking created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Failure 409 {object} responses.ErrorResponse "Slot is no longer available"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	g, err := bc.groundRepo.GetGroundByID(req.GroundID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}

	b := Booking{
		GroundID:      req.GroundID,
		UserID:        userID,
		SlotStart:     req.SlotStart,
		SlotEnd:       req.SlotEnd,
		Amount:        req.Amount,
		PaymentStatus: PaymentPending,
	}
	if err := bc.repo.Reserve(&b); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			responses.Conflict(c, "Slot is no longer available")
			return
		}
		responses.InternalServerError(c, "Failed to create booking: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Booking created, awaiting payment", CreateBookingResponse{
		Booking:      b,
		PaymentToken: "mock_tok_" + uuid.NewString(),
	})
}

// VerifyPayment godoc
// @Summary Confirm payment for a booking
// @Description Marks the booking Paid and appends a Reserved slot to the ground ledger. Only the booking's user may confirm; a booking can be finalized once.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param payment body VerifyPaymentRequest true "Booking and gateway transaction reference"
// @Success 200 {object} responses.SuccessResponse{data=Booking} "Booking confirmed"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Not the booking's user"
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Booking already finalized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /bookings/verify-payment [post]
func (bc *BookingController) VerifyPayment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	b, err := bc.repo.GetBookingByID(req.BookingID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve booking: "+err.Error())
		return
	}
	if b == nil {
		responses.NotFound(c, "Booking")
		return
	}
	if b.UserID != userID {
		responses.Forbidden(c, "Not authorized to verify this booking")
		return
	}

	confirmed, err := bc.repo.ConfirmPayment(b.ID, req.TransactionRef)
	if err != nil {
		if errors.Is(err, ErrAlreadyFinalized) {
			responses.Conflict(c, "Booking has already been finalized")
			return
		}
		responses.InternalServerError(c, "Failed to confirm payment: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Payment confirmed, slot reserved", confirmed)
}

// FailPayment godoc
// @Summary Mark a booking's payment as failed
// @Description Moves a Pending booking to Failed, releasing the window for other users.
// @Tags Bookings
// @Produce json
// @Param booking_id path uint true "Booking ID"
// @Success 200 {object} responses.SuccessResponse{data=Booking} "Booking marked failed"
// @Failure 403 {object} responses.ErrorResponse "Not the booking's user"
// @Failure 404 {object} responses.ErrorResponse "Booking not found"
// @Failure 409 {object} responses.ErrorResponse "Booking already finalized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /bookings/{booking_id}/fail-payment [post]
func (bc *BookingController) FailPayment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid booking ID")
		return
	}

	b, err := bc.repo.GetBookingByID(uint(bookingID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve booking: "+err.Error())
		return
	}
	if b == nil {
		responses.NotFound(c, "Booking")
		return
	}
	if b.UserID != userID {
		responses.Forbidden(c, "Not authorized to update this booking")
		return
	}

	failed, err := bc.repo.FailPayment(b.ID, "")
	if err != nil {
		if errors.Is(err, ErrAlreadyFinalized) {
			responses.Conflict(c, "Booking has already been finalized")
			return
		}
		responses.InternalServerError(c, "Failed to update booking: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Booking marked as failed", failed)
}

// GetMyBookings godoc
// @Summary List the caller's bookings
// @Tags Bookings
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Booking} "Caller's bookings"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /bookings/my [get]
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	bookings, err := bc.repo.GetBookingsByUserID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bookings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// GetGroundBookings godoc
// @Summary List bookings for a ground
// @Description Retrieves all bookings of a ground. Only the ground's owner may view them.
// @Tags Bookings
// @Produce json
// @Param ground_id path uint true "Ground ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Booking} "Ground's bookings"
// @Failure 403 {object} responses.ErrorResponse "Not the owner of this ground"
// @Failure 404 {object} responses.ErrorResponse "Ground not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /bookings/ground/{ground_id} [get]
func (bc *BookingController) GetGroundBookings(c *gin.Context) {
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

	g, err := bc.groundRepo.GetGroundByID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve ground: "+err.Error())
		return
	}
	if g == nil {
		responses.NotFound(c, "Ground")
		return
	}
	if g.OwnerID != userID {
		responses.Forbidden(c, "Not authorized to view bookings for this ground")
		return
	}

	bookings, err := bc.repo.GetBookingsByGroundID(uint(groundID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve bookings: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}
