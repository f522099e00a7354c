package ground

import (
	"testing"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// bookingRow mirrors the bookings table for overlap tests without importing
// the booking package, which would create an import cycle from its tests.
type bookingRow struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt
	GroundID      uint
	UserID        uint
	SlotStart     time.Time
	SlotEnd       time.Time
	Amount        float64
	PaymentStatus string
}

func (bookingRow) TableName() string { return "bookings" }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &Ground{}, &Slot{}, &bookingRow{}))
	return db
}

func createTestGround(t *testing.T, repo GroundRepository, ownerID uint) *Ground {
	g := &Ground{
		OwnerID:      ownerID,
		Name:         "Victory Park Turf",
		GroundType:   "Box",
		PricePerHour: 1200,
		Address:      "Ring Road, Surat",
	}
	require.NoError(t, repo.CreateGround(g))
	return g
}

func window(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestBlockSlot_Success(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(10, 12)
	slot, err := repo.BlockSlot(g.ID, start, end)
	require.NoError(t, err)
	assert.Equal(t, SlotBlocked, slot.Status)
	assert.Equal(t, g.ID, slot.GroundID)
}

func TestBlockSlot_RejectsOverlapWithBlocked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(10, 12)
	_, err := repo.BlockSlot(g.ID, start, end)
	require.NoError(t, err)

	start2, end2 := window(11, 13)
	_, err = repo.BlockSlot(g.ID, start2, end2)
	assert.ErrorIs(t, err, ErrWindowUnavailable)
}

func TestBlockSlot_RejectsOverlapWithLiveBooking(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(18, 19)
	require.NoError(t, db.Create(&bookingRow{
		GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end,
		Amount: 1200, PaymentStatus: "Pending",
	}).Error)

	_, err := repo.BlockSlot(g.ID, start, end)
	assert.ErrorIs(t, err, ErrWindowUnavailable)
}

func TestBlockSlot_IgnoresFailedBooking(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(18, 19)
	require.NoError(t, db.Create(&bookingRow{
		GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end,
		Amount: 1200, PaymentStatus: "Failed",
	}).Error)

	_, err := repo.BlockSlot(g.ID, start, end)
	assert.NoError(t, err)
}

func TestBlockSlot_AdjacentWindowsAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(10, 12)
	_, err := repo.BlockSlot(g.ID, start, end)
	require.NoError(t, err)

	start2, end2 := window(12, 14)
	_, err = repo.BlockSlot(g.ID, start2, end2)
	assert.NoError(t, err)
}

func TestRemoveBlockedSlot_OnlyRemovesBlocked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(10, 12)
	blocked, err := repo.BlockSlot(g.ID, start, end)
	require.NoError(t, err)

	reserved := &Slot{GroundID: g.ID, StartTime: start.Add(4 * time.Hour), EndTime: end.Add(4 * time.Hour), Status: SlotReserved}
	require.NoError(t, db.Create(reserved).Error)

	require.NoError(t, repo.RemoveBlockedSlot(g.ID, blocked.ID))
	gone, err := repo.GetSlot(g.ID, blocked.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// A Reserved ledger entry is not removable through this path.
	require.NoError(t, repo.RemoveBlockedSlot(g.ID, reserved.ID))
	still, err := repo.GetSlot(g.ID, reserved.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestBlockSlot_FreesWindowAfterRemoval(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)
	g := createTestGround(t, repo, 1)

	start, end := window(10, 12)
	blocked, err := repo.BlockSlot(g.ID, start, end)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveBlockedSlot(g.ID, blocked.ID))

	_, err = repo.BlockSlot(g.ID, start, end)
	assert.NoError(t, err)
}

func TestLockWindowWrites_SkippedOffPostgres(t *testing.T) {
	db := setupTestDB(t)

	// Must be a no-op on drivers without advisory locks; an attempt to run
	// pg_advisory_xact_lock on SQLite would fail the transaction.
	err := db.Transaction(func(tx *gorm.DB) error {
		return LockWindowWrites(tx, 1)
	})
	assert.NoError(t, err)
}

func TestGetGroundByID_NotFoundReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGroundRepository(db)

	g, err := repo.GetGroundByID(999)
	require.NoError(t, err)
	assert.Nil(t, g)
}
