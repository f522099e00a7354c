package team

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrTeamNotActive = errors.New("team is not active")
	ErrAlreadyMember = errors.New("user is already a member of this team")
	ErrTeamFull      = errors.New("team is full")
	ErrNotMember     = errors.New("user is not a member of this team")
)

// memberLockClass namespaces the advisory lock keys for team membership writes.
const memberLockClass = 3

// lockMembers serializes membership writers per team for the transaction.
// Under READ COMMITTED the headcount in the join guard reads a statement-start
// snapshot, so two racers for the last spot would both pass without it.
// Drivers without advisory locks skip it.
func lockMembers(tx *gorm.DB, teamID uint) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(memberLockClass)<<32|int64(teamID)).Error
}

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(t *Team, captainID uint) error
	GetTeamByID(id uint) (*Team, error)
	GetTeams(matchType string, page, limit int) ([]Team, int64, error)
	GetTeamsByUserID(userID uint) ([]Team, error)
	// Join admits the user if the team is Active, the user is not already a
	// member, and the headcount is below max_size. The predicates live in the
	// insert statement so concurrent joins for the last spot serialize at the
	// store and at most one succeeds.
	Join(teamID, userID uint) error
	Leave(teamID, userID uint) error
	Disband(teamID uint) (*Team, error)
	CountMembers(teamID uint) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(t *Team, captainID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		// Captain takes the first membership spot.
		return tx.Create(&TeamMember{TeamID: t.ID, UserID: captainID, JoinedAt: time.Now()}).Error
	})
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var t Team
	if err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("team_members.id asc")
	}).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *teamRepository) GetTeams(matchType string, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Where("status = ?", StatusActive)
	if matchType != "" {
		query = query.Where("match_type = ?", matchType)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetTeamsByUserID(userID uint) ([]Team, error) {
	var teams []Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at desc").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Join(teamID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockMembers(tx, teamID); err != nil {
			return err
		}

		res := tx.Exec(`
			INSERT INTO team_members (team_id, user_id, joined_at)
			SELECT ?, ?, ?
			WHERE EXISTS (
				SELECT 1 FROM teams
				WHERE id = ? AND status = 'Active' AND deleted_at IS NULL
			)
			AND NOT EXISTS (
				SELECT 1 FROM team_members WHERE team_id = ? AND user_id = ?
			)
			AND (SELECT COUNT(*) FROM team_members WHERE team_id = ?) <
			    (SELECT max_size FROM teams WHERE id = ?)`,
			teamID, userID, time.Now(),
			teamID,
			teamID, userID,
			teamID, teamID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.diagnoseJoinFailure(tx, teamID, userID)
		}
		return nil
	})
}

func (r *teamRepository) diagnoseJoinFailure(tx *gorm.DB, teamID, userID uint) error {
	var t Team
	if err := tx.First(&t, teamID).Error; err != nil {
		return err
	}
	if t.Status != StatusActive {
		return ErrTeamNotActive
	}
	var count int64
	if err := tx.Model(&TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyMember
	}
	return ErrTeamFull
}

func (r *teamRepository) Leave(teamID, userID uint) error {
	res := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotMember
	}
	return nil
}

func (r *teamRepository) Disband(teamID uint) (*Team, error) {
	if err := r.db.Model(&Team{}).Where("id = ?", teamID).Update("status", StatusDisbanded).Error; err != nil {
		return nil, err
	}
	return r.GetTeamByID(teamID)
}

func (r *teamRepository) CountMembers(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
