package booking

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// Booking is a user's claim on a ground time window. It is created Pending by
// the conflict resolver and moved to Paid or Failed exactly once by the
// payment gate; both are terminal.
type Booking struct {
	gorm.Model
	GroundID       uint          `gorm:"index;not null" json:"ground_id"`
	UserID         uint          `gorm:"index;not null" json:"user_id"`
	SlotStart      time.Time     `gorm:"not null" json:"slot_start"`
	SlotEnd        time.Time     `gorm:"not null" json:"slot_end"`
	Amount         float64       `gorm:"not null" json:"amount"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'Pending';index" json:"payment_status"`
	TransactionRef string        `json:"transaction_ref,omitempty"`
}
