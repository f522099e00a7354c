package booking

import (
	"errors"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
	"gorm.io/gorm"
)

var (
	// ErrSlotUnavailable is returned when the requested window overlaps a
	// Pending/Paid booking or a Blocked slot of the same ground.
	ErrSlotUnavailable = errors.New("slot is no longer available")
	// ErrAlreadyFinalized is returned when the booking is not Pending anymore.
	ErrAlreadyFinalized = errors.New("booking has already been finalized")
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Reserve atomically checks the window and creates a Pending booking.
	// The overlap check and the insert are one statement so two concurrent
	// requests for overlapping windows cannot both succeed.
	Reserve(b *Booking) error
	GetBookingByID(id uint) (*Booking, error)
	// ConfirmPayment moves a Pending booking to Paid and appends the Reserved
	// slot to the ground ledger as one transactional unit.
	ConfirmPayment(bookingID uint, transactionRef string) (*Booking, error)
	// FailPayment moves a Pending booking to Failed, releasing the window.
	FailPayment(bookingID uint, transactionRef string) (*Booking, error)
	GetBookingsByUserID(userID uint) ([]Booking, error)
	GetBookingsByGroundID(groundID uint) ([]Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new instance of BookingRepository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Reserve performs the conditional insert. The guard runs the half-open
// interval test (existing.start < requested.end AND existing.end >
// requested.start) against live bookings and owner-blocked slots inside the
// insert statement; RowsAffected == 0 means the window was taken. The
// transaction holds the ground's window lock for the duration so a concurrent
// reservation or owner block cannot slip past the guard between its snapshot
// and the insert.
func (r *bookingRepository) Reserve(b *Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ground.LockWindowWrites(tx, b.GroundID); err != nil {
			return err
		}

		now := time.Now()
		res := tx.Exec(`
			INSERT INTO bookings (created_at, updated_at, ground_id, user_id, slot_start, slot_end, amount, payment_status)
			SELECT ?, ?, ?, ?, ?, ?, ?, 'Pending'
			WHERE NOT EXISTS (
				SELECT 1 FROM bookings
				WHERE ground_id = ? AND payment_status IN ('Pending', 'Paid')
				  AND slot_start < ? AND slot_end > ?
				  AND deleted_at IS NULL
			)
			AND NOT EXISTS (
				SELECT 1 FROM slots
				WHERE ground_id = ? AND status = 'Blocked'
				  AND start_time < ? AND end_time > ?
				  AND deleted_at IS NULL
			)`,
			now, now, b.GroundID, b.UserID, b.SlotStart, b.SlotEnd, b.Amount,
			b.GroundID, b.SlotEnd, b.SlotStart,
			b.GroundID, b.SlotEnd, b.SlotStart,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotUnavailable
		}

		return tx.Where("ground_id = ? AND user_id = ? AND slot_start = ? AND slot_end = ?",
			b.GroundID, b.UserID, b.SlotStart, b.SlotEnd).
			Order("id desc").First(b).Error
	})
}

func (r *bookingRepository) GetBookingByID(id uint) (*Booking, error) {
	var b Booking
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// ConfirmPayment runs the two writes of the finalization as one transaction:
// a guarded status update (only a Pending row can transition) and the Reserved
// slot append. A failure of either write rolls back both, so a Paid booking
// can never exist without its ledger entry.
func (r *bookingRepository) ConfirmPayment(bookingID uint, transactionRef string) (*Booking, error) {
	var confirmed Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Booking{}).
			Where("id = ? AND payment_status = ?", bookingID, PaymentPending).
			Updates(map[string]interface{}{
				"payment_status":  PaymentPaid,
				"transaction_ref": transactionRef,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyFinalized
		}

		if err := tx.First(&confirmed, bookingID).Error; err != nil {
			return err
		}

		slot := ground.Slot{
			GroundID:  confirmed.GroundID,
			StartTime: confirmed.SlotStart,
			EndTime:   confirmed.SlotEnd,
			Status:    ground.SlotReserved,
		}
		return tx.Create(&slot).Error
	})
	if err != nil {
		return nil, err
	}
	return &confirmed, nil
}

func (r *bookingRepository) FailPayment(bookingID uint, transactionRef string) (*Booking, error) {
	res := r.db.Model(&Booking{}).
		Where("id = ? AND payment_status = ?", bookingID, PaymentPending).
		Updates(map[string]interface{}{
			"payment_status":  PaymentFailed,
			"transaction_ref": transactionRef,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyFinalized
	}

	var failed Booking
	if err := r.db.First(&failed, bookingID).Error; err != nil {
		return nil, err
	}
	return &failed, nil
}

func (r *bookingRepository) GetBookingsByUserID(userID uint) ([]Booking, error) {
	var bookings []Booking
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetBookingsByGroundID(groundID uint) ([]Booking, error) {
	var bookings []Booking
	if err := r.db.Where("ground_id = ?", groundID).Order("slot_start desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
