package user

import "gorm.io/gorm"

const (
	RoleBatsman      = "Batsman"
	RoleBowler       = "Bowler"
	RoleAllRounder   = "All-rounder"
	RoleWicketkeeper = "Wicketkeeper"
)

// User is a player account identified by phone number. Owners additionally
// manage grounds and see earnings.
type User struct {
	gorm.Model
	Phone            string  `gorm:"uniqueIndex;not null" json:"phone"`
	Name             string  `gorm:"not null" json:"name"`
	Role             string  `gorm:"type:VARCHAR(20);default:'All-rounder'" json:"role"`
	ProfileImage     string  `json:"profile_image"`
	DisciplineRating float64 `gorm:"default:5.0" json:"discipline_rating"` // mean of all ratings received, recomputed on every submission
	IsOwner          bool    `gorm:"default:false" json:"is_owner"`
}
