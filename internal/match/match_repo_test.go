package match

import (
	"sync"
	"testing"
	"time"

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

	require.NoError(t, db.AutoMigrate(&user.User{}, &Match{}, &MatchPlayer{}))
	return db
}

func createTestMatch(t *testing.T, repo MatchRepository, creatorID uint, playersNeeded int) *Match {
	m := &Match{
		CreatorID:     creatorID,
		TeamName:      "Surat Strikers",
		MatchType:     MatchTypeBox,
		PlayersNeeded: playersNeeded,
		StartTime:     time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Status:        StatusOpen,
	}
	require.NoError(t, repo.CreateMatch(m, creatorID))
	return m
}

func TestCreateMatch_SeedsCreatorOnRoster(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	m := createTestMatch(t, repo, 1, 3)

	count, err := repo.CountPlayers(m.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	joined, err := repo.IsPlayer(m.ID, 1)
	require.NoError(t, err)
	assert.True(t, joined)
}

func TestJoin_AddsPlayer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	require.NoError(t, repo.Join(m.ID, 2))

	count, _ := repo.CountPlayers(m.ID)
	assert.EqualValues(t, 2, count)

	// Needs 3 others, only 1 joined so far.
	got, err := repo.GetMatchByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, got.Status)
}

func TestJoin_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	require.NoError(t, repo.Join(m.ID, 2))
	assert.ErrorIs(t, repo.Join(m.ID, 2), ErrAlreadyJoined)

	// The creator holds a roster row already.
	assert.ErrorIs(t, repo.Join(m.ID, 1), ErrAlreadyJoined)
}

func TestJoin_AutoConfirmsOnCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 2)

	require.NoError(t, repo.Join(m.ID, 2))
	got, _ := repo.GetMatchByID(m.ID)
	assert.Equal(t, StatusOpen, got.Status)

	// Second joiner fills playersNeeded; the creator does not count.
	require.NoError(t, repo.Join(m.ID, 3))
	got, _ = repo.GetMatchByID(m.ID)
	assert.Equal(t, StatusConfirmed, got.Status)
}

func TestJoin_ConfirmedMatchRejectsJoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 1)

	require.NoError(t, repo.Join(m.ID, 2))
	got, _ := repo.GetMatchByID(m.ID)
	require.Equal(t, StatusConfirmed, got.Status)

	assert.ErrorIs(t, repo.Join(m.ID, 3), ErrMatchNotOpen)
}

func TestJoin_CancelledMatchRejectsJoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	_, err := repo.SetStatus(m.ID, StatusCancelled)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Join(m.ID, 2), ErrMatchNotOpen)
}

func TestJoin_ConcurrentRacesForLastSpot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 2)

	// One spot already taken, one remains.
	require.NoError(t, repo.Join(m.ID, 2))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Join(m.ID, uint(100+i))
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

	count, _ := repo.CountPlayers(m.ID)
	assert.EqualValues(t, 3, count)

	got, _ := repo.GetMatchByID(m.ID)
	assert.Equal(t, StatusConfirmed, got.Status)
}

func TestLeave_RemovesPlayerAndKeepsConfirmed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 1)

	require.NoError(t, repo.Join(m.ID, 2))
	got, _ := repo.GetMatchByID(m.ID)
	require.Equal(t, StatusConfirmed, got.Status)

	require.NoError(t, repo.Leave(m.ID, 2))

	// Confirmed never reverts to Open.
	got, _ = repo.GetMatchByID(m.ID)
	assert.Equal(t, StatusConfirmed, got.Status)

	count, _ := repo.CountPlayers(m.ID)
	assert.EqualValues(t, 1, count)
}

func TestLeave_NotJoined(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	assert.ErrorIs(t, repo.Leave(m.ID, 42), ErrNotJoined)
}

func TestLeave_ThenRejoin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	require.NoError(t, repo.Join(m.ID, 2))
	require.NoError(t, repo.Leave(m.ID, 2))
	assert.NoError(t, repo.Join(m.ID, 2))
}

func TestSetStatus_CancelledIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	m := createTestMatch(t, repo, 1, 3)

	_, err := repo.SetStatus(m.ID, StatusCancelled)
	require.NoError(t, err)

	// A cancelled match cannot be revived.
	_, err = repo.SetStatus(m.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrMatchCancelled)

	got, _ := repo.GetMatchByID(m.ID)
	assert.Equal(t, StatusCancelled, got.Status)

	// Repeating the cancel stays a no-op.
	again, err := repo.SetStatus(m.ID, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, again.Status)
}

func TestGetOpenMatches_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	createTestMatch(t, repo, 1, 3)
	leather := &Match{
		CreatorID:     2,
		TeamName:      "Rander Royals",
		MatchType:     MatchTypeLeather,
		PlayersNeeded: 5,
		StartTime:     time.Date(2026, 9, 20, 8, 0, 0, 0, time.UTC),
		Status:        StatusOpen,
	}
	require.NoError(t, repo.CreateMatch(leather, 2))
	_, err := repo.SetStatus(createTestMatch(t, repo, 3, 2).ID, StatusCancelled)
	require.NoError(t, err)

	all, total, err := repo.GetOpenMatches("", nil, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	onlyLeather, total, err := repo.GetOpenMatches(MatchTypeLeather, nil, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, onlyLeather, 1)
	assert.Equal(t, "Rander Royals", onlyLeather[0].TeamName)

	from := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	upcoming, total, err := repo.GetOpenMatches("", &from, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, upcoming, 1)
	assert.Equal(t, MatchTypeLeather, upcoming[0].MatchType)
}
