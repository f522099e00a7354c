package ground

import (
	"time"

	"gorm.io/gorm"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "Available"
	SlotReserved  SlotStatus = "Reserved"
	SlotBlocked   SlotStatus = "Blocked"
)

const (
	TypeOpenGround  = "Open Ground"
	TypeNetPractice = "Net Practice"
	TypeBoxCricket  = "Box Cricket"
	TypeTurfGround  = "Turf Ground"
	TypeStadium     = "Stadium"
	TypeIndoor      = "Indoor"
)

// Ground is a bookable cricket facility owned by exactly one owner account.
// RatingAverage/RatingCount are maintained by the rating module.
type Ground struct {
	gorm.Model
	OwnerID       uint    `gorm:"index;not null" json:"owner_id"`
	Name          string  `gorm:"not null" json:"name"`
	GroundType    string  `gorm:"type:VARCHAR(20);default:'Open Ground'" json:"ground_type"`
	Images        string  `gorm:"type:json" json:"images"`    // JSON array of URLs
	Amenities     string  `gorm:"type:json" json:"amenities"` // JSON array of strings
	PricePerHour  float64 `gorm:"not null" json:"price_per_hour"`
	Address       string  `json:"address"`
	RatingAverage float64 `gorm:"default:0" json:"rating_average"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`
	Slots         []Slot  `gorm:"foreignKey:GroundID" json:"slots,omitempty"`
}

// Slot is one ledger entry of a ground's calendar. Reserved slots are written
// exclusively by the booking module on payment confirmation; Blocked slots by
// the owner. No two Reserved/Blocked slots of a ground may overlap.
type Slot struct {
	gorm.Model
	GroundID  uint       `gorm:"index;not null" json:"ground_id"`
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   time.Time  `gorm:"not null" json:"end_time"`
	Status    SlotStatus `gorm:"type:VARCHAR(20);default:'Available'" json:"status"`
}
