package match

import (
	"time"

	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusOpen      MatchStatus = "Open"
	StatusConfirmed MatchStatus = "Confirmed"
	StatusCompleted MatchStatus = "Completed"
	StatusCancelled MatchStatus = "Cancelled"
)

const (
	MatchTypeTennis  = "Tennis"
	MatchTypeLeather = "Leather"
	MatchTypeBox     = "Box"
)

// Match is a one-off hosted game. The creator occupies the first roster spot;
// the match auto-promotes to Confirmed when playersNeeded others have joined.
// Confirmed never reverts to Open when a player leaves.
type Match struct {
	gorm.Model
	CreatorID     uint          `gorm:"index;not null" json:"creator_id"`
	TeamName      string        `gorm:"not null" json:"team_name"`
	MatchType     string        `gorm:"type:VARCHAR(20);not null" json:"match_type"`
	PlayersNeeded int           `gorm:"not null" json:"players_needed"`
	GroundID      *uint         `gorm:"index" json:"ground_id,omitempty"`
	WhatsappLink  string        `json:"whatsapp_link,omitempty"`
	StartTime     time.Time     `gorm:"not null" json:"start_time"`
	Status        MatchStatus   `gorm:"type:VARCHAR(20);default:'Open';index" json:"status"`
	Players       []MatchPlayer `gorm:"foreignKey:MatchID" json:"players,omitempty"`
}

// MatchPlayer is one roster entry. Rows are hard-deleted on leave so the
// (match_id, user_id) uniqueness survives rejoin.
type MatchPlayer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	MatchID   uint      `gorm:"uniqueIndex:idx_match_player;not null" json:"match_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_match_player;not null" json:"user_id"`
}
