package rating

import "gorm.io/gorm"

// Rating is a 1-5 score from a user aimed at exactly one target, either
// another user (discipline) or a ground (quality). Ratings tied to a match
// are unique per (rater, target, match) for both target kinds.
type Rating struct {
	gorm.Model
	FromUserID uint   `gorm:"uniqueIndex:idx_player_rating;uniqueIndex:idx_ground_rating;not null" json:"from_user_id"`
	ToUserID   *uint  `gorm:"uniqueIndex:idx_player_rating" json:"to_user_id,omitempty"`
	ToGroundID *uint  `gorm:"uniqueIndex:idx_ground_rating" json:"to_ground_id,omitempty"`
	MatchID    *uint  `gorm:"uniqueIndex:idx_player_rating;uniqueIndex:idx_ground_rating" json:"match_id,omitempty"`
	Score      int    `gorm:"not null" json:"score"`
	Comment    string `json:"comment,omitempty"`
}
