package match

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMatchNotOpen   = errors.New("match is no longer open")
	ErrAlreadyJoined  = errors.New("user has already joined this match")
	ErrMatchFull      = errors.New("match roster is full")
	ErrNotJoined      = errors.New("user is not part of this match")
	ErrMatchCancelled = errors.New("match has been cancelled")
)

// rosterLockClass namespaces the advisory lock keys for match roster writes.
const rosterLockClass = 2

// lockRoster serializes roster writers per match for the transaction. Under
// READ COMMITTED the capacity count in the join guard reads a statement-start
// snapshot, so two racers for the last spot would both pass without it.
// Drivers without advisory locks skip it.
func lockRoster(tx *gorm.DB, matchID uint) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(rosterLockClass)<<32|int64(matchID)).Error
}

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	CreateMatch(m *Match, creatorID uint) error
	GetMatchByID(id uint) (*Match, error)
	GetOpenMatches(matchType string, from *time.Time, page, limit int) ([]Match, int64, error)
	// Join appends the user to the roster and auto-confirms on capacity.
	// The status/duplicate/capacity predicates live inside the insert
	// statement so concurrent joins racing for the last spot serialize at
	// the store and exactly one wins.
	Join(matchID, userID uint) error
	Leave(matchID, userID uint) error
	SetStatus(matchID uint, status MatchStatus) (*Match, error)
	CountPlayers(matchID uint) (int64, error)
	IsPlayer(matchID, userID uint) (bool, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(m *Match, creatorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		// Creator takes the first roster spot.
		return tx.Create(&MatchPlayer{MatchID: m.ID, UserID: creatorID}).Error
	})
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("match_players.id asc")
	}).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetOpenMatches(matchType string, from *time.Time, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{}).Where("status = ?", StatusOpen)
	if matchType != "" {
		query = query.Where("match_type = ?", matchType)
	}
	if from != nil {
		query = query.Where("start_time >= ?", *from)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("start_time asc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) Join(matchID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockRoster(tx, matchID); err != nil {
			return err
		}

		now := time.Now()
		res := tx.Exec(`
			INSERT INTO match_players (created_at, updated_at, match_id, user_id)
			SELECT ?, ?, ?, ?
			WHERE EXISTS (
				SELECT 1 FROM matches
				WHERE id = ? AND status = 'Open' AND deleted_at IS NULL
			)
			AND NOT EXISTS (
				SELECT 1 FROM match_players WHERE match_id = ? AND user_id = ?
			)
			AND (SELECT COUNT(*) FROM match_players WHERE match_id = ?) <
			    (SELECT players_needed + 1 FROM matches WHERE id = ?)`,
			now, now, matchID, userID,
			matchID,
			matchID, userID,
			matchID, matchID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.diagnoseJoinFailure(tx, matchID, userID)
		}

		// Auto-promotion: the creator does not count towards playersNeeded.
		return tx.Exec(`
			UPDATE matches SET status = 'Confirmed', updated_at = ?
			WHERE id = ? AND status = 'Open'
			  AND (SELECT COUNT(*) FROM match_players WHERE match_id = ?) - 1 >= players_needed`,
			now, matchID, matchID,
		).Error
	})
}

func (r *matchRepository) diagnoseJoinFailure(tx *gorm.DB, matchID, userID uint) error {
	var m Match
	if err := tx.First(&m, matchID).Error; err != nil {
		return err
	}
	if m.Status != StatusOpen {
		return ErrMatchNotOpen
	}
	var count int64
	if err := tx.Model(&MatchPlayer{}).Where("match_id = ? AND user_id = ?", matchID, userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyJoined
	}
	return ErrMatchFull
}

func (r *matchRepository) Leave(matchID, userID uint) error {
	res := r.db.Where("match_id = ? AND user_id = ?", matchID, userID).Delete(&MatchPlayer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotJoined
	}
	return nil
}

func (r *matchRepository) SetStatus(matchID uint, status MatchStatus) (*Match, error) {
	query := r.db.Model(&Match{}).Where("id = ?", matchID)
	// Cancelled is terminal; only a repeated cancel may touch it.
	if status != StatusCancelled {
		query = query.Where("status <> ?", StatusCancelled)
	}
	res := query.Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrMatchCancelled
	}
	return r.GetMatchByID(matchID)
}

func (r *matchRepository) CountPlayers(matchID uint) (int64, error) {
	var count int64
	err := r.db.Model(&MatchPlayer{}).Where("match_id = ?", matchID).Count(&count).Error
	return count, err
}

func (r *matchRepository) IsPlayer(matchID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&MatchPlayer{}).Where("match_id = ? AND user_id = ?", matchID, userID).Count(&count).Error
	return count > 0, err
}
