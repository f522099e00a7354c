package earnings

import (
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/booking"
	"gorm.io/gorm"
)

// Summary aggregates an owner's revenue across all their grounds. Only Paid
// bookings count towards revenue.
type Summary struct {
	Daily          float64           `json:"daily"`
	Weekly         float64           `json:"weekly"`
	Monthly        float64           `json:"monthly"`
	TotalBookings  int64             `json:"total_bookings"`
	RecentBookings []booking.Booking `json:"recent_bookings"`
}

// EarningsRepository defines the interface for earnings aggregation
type EarningsRepository interface {
	GetOwnerSummary(ownerID uint) (*Summary, error)
}

type earningsRepository struct {
	db *gorm.DB
}

// NewEarningsRepository creates a new instance of EarningsRepository
func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

func (r *earningsRepository) GetOwnerSummary(ownerID uint) (*Summary, error) {
	var groundIDs []uint
	if err := r.db.Table("grounds").
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Pluck("id", &groundIDs).Error; err != nil {
		return nil, err
	}

	summary := &Summary{RecentBookings: []booking.Booking{}}
	if len(groundIDs) == 0 {
		return summary, nil
	}

	now := time.Now()
	windows := []struct {
		since time.Time
		dest  *float64
	}{
		{now.AddDate(0, 0, -1), &summary.Daily},
		{now.AddDate(0, 0, -7), &summary.Weekly},
		{now.AddDate(0, 0, -30), &summary.Monthly},
	}
	for _, w := range windows {
		var total float64
		if err := r.db.Model(&booking.Booking{}).
			Where("ground_id IN ? AND payment_status = ? AND created_at >= ?", groundIDs, booking.PaymentPaid, w.since).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error; err != nil {
			return nil, err
		}
		*w.dest = total
	}

	if err := r.db.Model(&booking.Booking{}).
		Where("ground_id IN ? AND payment_status = ?", groundIDs, booking.PaymentPaid).
		Count(&summary.TotalBookings).Error; err != nil {
		return nil, err
	}

	if err := r.db.
		Where("ground_id IN ? AND payment_status = ?", groundIDs, booking.PaymentPaid).
		Order("created_at desc").
		Limit(5).
		Find(&summary.RecentBookings).Error; err != nil {
		return nil, err
	}
	return summary, nil
}
