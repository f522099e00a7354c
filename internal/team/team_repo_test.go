package team

import (
	"sync"
	"testing"

	"github.com/DhruvJoshi-17/pitchbook/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &Team{}, &TeamMember{}))
	return db
}

func createTestTeam(t *testing.T, repo TeamRepository, captainID uint, maxSize int) *Team {
	tm := &Team{
		Name:      "Adajan Avengers",
		MatchType: "Tennis",
		CaptainID: captainID,
		MaxSize:   maxSize,
		Status:    StatusActive,
	}
	require.NoError(t, repo.CreateTeam(tm, captainID))
	return tm
}

func TestCreateTeam_SeedsCaptain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)

	tm := createTestTeam(t, repo, 1, 11)

	count, err := repo.CountMembers(tm.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestJoin_AddsMember(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	require.NoError(t, repo.Join(tm.ID, 2))

	count, _ := repo.CountMembers(tm.ID)
	assert.EqualValues(t, 2, count)
}

func TestJoin_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	require.NoError(t, repo.Join(tm.ID, 2))
	assert.ErrorIs(t, repo.Join(tm.ID, 2), ErrAlreadyMember)
	assert.ErrorIs(t, repo.Join(tm.ID, 1), ErrAlreadyMember)
}

func TestJoin_FullTeamRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	// Captain plus one spot.
	tm := createTestTeam(t, repo, 1, 2)

	require.NoError(t, repo.Join(tm.ID, 2))
	assert.ErrorIs(t, repo.Join(tm.ID, 3), ErrTeamFull)
}

func TestJoin_DisbandedTeamRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	_, err := repo.Disband(tm.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Join(tm.ID, 2), ErrTeamNotActive)
}

func TestJoin_ConcurrentRacesForLastSpot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 2)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Join(tm.ID, uint(100+i))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one racer may take the last spot")

	count, _ := repo.CountMembers(tm.ID)
	assert.EqualValues(t, 2, count)
}

func TestLeave_RemovesMember(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	require.NoError(t, repo.Join(tm.ID, 2))
	require.NoError(t, repo.Leave(tm.ID, 2))

	count, _ := repo.CountMembers(tm.ID)
	assert.EqualValues(t, 1, count)
}

func TestLeave_NotMember(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	assert.ErrorIs(t, repo.Leave(tm.ID, 42), ErrNotMember)
}

func TestLeave_ThenRejoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	require.NoError(t, repo.Join(tm.ID, 2))
	require.NoError(t, repo.Leave(tm.ID, 2))
	assert.NoError(t, repo.Join(tm.ID, 2))
}

func TestDisband_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)
	tm := createTestTeam(t, repo, 1, 11)

	first, err := repo.Disband(tm.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDisbanded, first.Status)

	second, err := repo.Disband(tm.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDisbanded, second.Status)
}

func TestGetTeamsByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeamRepository(db)

	tm1 := createTestTeam(t, repo, 1, 11)
	tm2 := createTestTeam(t, repo, 2, 11)
	require.NoError(t, repo.Join(tm2.ID, 3))
	require.NoError(t, repo.Join(tm1.ID, 3))

	teams, err := repo.GetTeamsByUserID(3)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	captainOnly, err := repo.GetTeamsByUserID(1)
	require.NoError(t, err)
	assert.Len(t, captainOnly, 1)
}
