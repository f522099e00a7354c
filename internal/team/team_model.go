package team

import (
	"time"

	"gorm.io/gorm"
)

type TeamStatus string

const (
	StatusActive    TeamStatus = "Active"
	StatusDisbanded TeamStatus = "Disbanded"
)

// Team is a persistent squad captained by its creator. Membership is bounded
// by MaxSize including the captain.
type Team struct {
	gorm.Model
	Name         string       `gorm:"not null" json:"name"`
	MatchType    string       `gorm:"type:VARCHAR(20);not null" json:"match_type"`
	CaptainID    uint         `gorm:"index;not null" json:"captain_id"`
	MaxSize      int          `gorm:"not null;default:11" json:"max_size"`
	WhatsappLink string       `json:"whatsapp_link,omitempty"`
	Status       TeamStatus   `gorm:"type:VARCHAR(20);default:'Active';index" json:"status"`
	Members      []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// TeamMember is one membership row. Rows are hard-deleted on leave so the
// (team_id, user_id) uniqueness survives rejoin.
type TeamMember struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	TeamID   uint      `gorm:"uniqueIndex:idx_team_member;not null" json:"team_id"`
	UserID   uint      `gorm:"uniqueIndex:idx_team_member;not null" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
