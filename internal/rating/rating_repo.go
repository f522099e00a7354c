package rating

import (
	"errors"
	"math"

	"gorm.io/gorm"
)

var (
	ErrDuplicateRating = errors.New("user has already rated this target for this match")
)

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	// SubmitRating stores the rating and recomputes the target's aggregate
	// from the full rating set in the same transaction.
	SubmitRating(rt *Rating) error
	GetRatingsByGroundID(groundID uint, page, limit int) ([]Rating, int64, error)
	GetRatingsByUserID(toUserID uint) ([]Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new instance of RatingRepository
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) SubmitRating(rt *Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if rt.MatchID != nil {
			dup := tx.Model(&Rating{}).Where("from_user_id = ? AND match_id = ?", rt.FromUserID, *rt.MatchID)
			if rt.ToUserID != nil {
				dup = dup.Where("to_user_id = ?", *rt.ToUserID)
			} else {
				dup = dup.Where("to_ground_id = ?", *rt.ToGroundID)
			}
			var count int64
			if err := dup.Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateRating
			}
		}

		if err := tx.Create(rt).Error; err != nil {
			return err
		}

		if rt.ToUserID != nil {
			return r.recomputeUserRating(tx, *rt.ToUserID)
		}
		return r.recomputeGroundRating(tx, *rt.ToGroundID)
	})
}

// recomputeUserRating recalculates the mean over every rating the user has
// ever received. A full recompute keeps the aggregate drift-free.
func (r *ratingRepository) recomputeUserRating(tx *gorm.DB, userID uint) error {
	var avg float64
	if err := tx.Model(&Rating{}).
		Where("to_user_id = ?", userID).
		Select("AVG(score)").
		Scan(&avg).Error; err != nil {
		return err
	}
	return tx.Table("users").Where("id = ?", userID).
		Update("discipline_rating", roundToOneDecimal(avg)).Error
}

func (r *ratingRepository) recomputeGroundRating(tx *gorm.DB, groundID uint) error {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&Rating{}).
		Where("to_ground_id = ?", groundID).
		Select("AVG(score) as avg, COUNT(*) as count").
		Scan(&result).Error; err != nil {
		return err
	}
	return tx.Table("grounds").Where("id = ?", groundID).
		Updates(map[string]interface{}{
			"rating_average": roundToOneDecimal(result.Avg),
			"rating_count":   result.Count,
		}).Error
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func (r *ratingRepository) GetRatingsByGroundID(groundID uint, page, limit int) ([]Rating, int64, error) {
	var ratings []Rating
	var total int64

	query := r.db.Model(&Rating{}).Where("to_ground_id = ?", groundID)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&ratings).Error; err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

func (r *ratingRepository) GetRatingsByUserID(toUserID uint) ([]Rating, error) {
	var ratings []Rating
	err := r.db.Where("to_user_id = ?", toUserID).Order("created_at desc").Find(&ratings).Error
	return ratings, err
}
