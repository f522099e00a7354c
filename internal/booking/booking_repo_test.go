package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/internal/ground"
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
	// A single connection keeps the in-memory database alive and serializes
	// concurrent statements the way a real server would at the row level.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &ground.Ground{}, &ground.Slot{}, &Booking{}))
	return db
}

func createTestGround(t *testing.T, db *gorm.DB, ownerID uint) *ground.Ground {
	g := &ground.Ground{
		OwnerID:      ownerID,
		Name:         "Victory Park Turf",
		GroundType:   "Box",
		PricePerHour: 1200,
		Address:      "Ring Road, Surat",
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func slotWindow(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func TestReserve_Success(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(b))

	assert.NotZero(t, b.ID)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
}

func TestReserve_RejectsOverlappingWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 20)
	first := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 2400}
	require.NoError(t, repo.Reserve(first))

	// Partially overlapping window.
	start2, end2 := slotWindow(19, 21)
	second := &Booking{GroundID: g.ID, UserID: 3, SlotStart: start2, SlotEnd: end2, Amount: 2400}
	assert.ErrorIs(t, repo.Reserve(second), ErrSlotUnavailable)

	// Fully contained window.
	start3, end3 := slotWindow(18, 19)
	third := &Booking{GroundID: g.ID, UserID: 4, SlotStart: start3, SlotEnd: end3, Amount: 1200}
	assert.ErrorIs(t, repo.Reserve(third), ErrSlotUnavailable)
}

func TestReserve_AllowsAdjacentWindows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	first := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(first))

	// [19, 20) touches [18, 19) only at the boundary and must pass.
	start2, end2 := slotWindow(19, 20)
	second := &Booking{GroundID: g.ID, UserID: 3, SlotStart: start2, SlotEnd: end2, Amount: 1200}
	assert.NoError(t, repo.Reserve(second))
}

func TestReserve_AllowsSameWindowOnDifferentGround(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g1 := createTestGround(t, db, 1)
	g2 := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	first := &Booking{GroundID: g1.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(first))

	second := &Booking{GroundID: g2.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	assert.NoError(t, repo.Reserve(second))
}

func TestReserve_RejectsWindowOverlappingBlockedSlot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(10, 12)
	require.NoError(t, db.Create(&ground.Slot{
		GroundID: g.ID, StartTime: start, EndTime: end, Status: ground.SlotBlocked,
	}).Error)

	start2, end2 := slotWindow(11, 13)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start2, SlotEnd: end2, Amount: 2400}
	assert.ErrorIs(t, repo.Reserve(b), ErrSlotUnavailable)
}

func TestReserve_FailedBookingReleasesWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	first := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(first))

	_, err := repo.FailPayment(first.ID, "")
	require.NoError(t, err)

	second := &Booking{GroundID: g.ID, UserID: 3, SlotStart: start, SlotEnd: end, Amount: 1200}
	assert.NoError(t, repo.Reserve(second))
}

func TestReserve_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	const workers = 10
	start, end := slotWindow(18, 19)

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := &Booking{GroundID: g.ID, UserID: uint(100 + i), SlotStart: start, SlotEnd: end, Amount: 1200}
			errs[i] = repo.Reserve(b)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent reservation must succeed")

	var count int64
	db.Model(&Booking{}).Where("ground_id = ? AND payment_status = ?", g.ID, PaymentPending).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestConfirmPayment_MarksPaidAndAppendsSlot(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(b))

	confirmed, err := repo.ConfirmPayment(b.ID, "txn_12345")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, confirmed.PaymentStatus)
	assert.Equal(t, "txn_12345", confirmed.TransactionRef)

	var slots []ground.Slot
	require.NoError(t, db.Where("ground_id = ?", g.ID).Find(&slots).Error)
	require.Len(t, slots, 1)
	assert.Equal(t, ground.SlotReserved, slots[0].Status)
	assert.True(t, slots[0].StartTime.Equal(start))
	assert.True(t, slots[0].EndTime.Equal(end))
}

func TestConfirmPayment_SecondConfirmFails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(b))

	_, err := repo.ConfirmPayment(b.ID, "txn_1")
	require.NoError(t, err)

	_, err = repo.ConfirmPayment(b.ID, "txn_2")
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	// The double confirm must not duplicate the ledger entry.
	var count int64
	db.Model(&ground.Slot{}).Where("ground_id = ?", g.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestConfirmPayment_FailedBookingCannotBeConfirmed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(b))

	_, err := repo.FailPayment(b.ID, "")
	require.NoError(t, err)

	_, err = repo.ConfirmPayment(b.ID, "txn_late")
	assert.ErrorIs(t, err, ErrAlreadyFinalized)

	var count int64
	db.Model(&ground.Slot{}).Where("ground_id = ?", g.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFailPayment_PaidBookingCannotBeFailed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start, end := slotWindow(18, 19)
	b := &Booking{GroundID: g.ID, UserID: 2, SlotStart: start, SlotEnd: end, Amount: 1200}
	require.NoError(t, repo.Reserve(b))

	_, err := repo.ConfirmPayment(b.ID, "txn_1")
	require.NoError(t, err)

	_, err = repo.FailPayment(b.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestGetBookingsByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	g := createTestGround(t, db, 1)

	start1, end1 := slotWindow(10, 11)
	start2, end2 := slotWindow(12, 13)
	require.NoError(t, repo.Reserve(&Booking{GroundID: g.ID, UserID: 2, SlotStart: start1, SlotEnd: end1, Amount: 1200}))
	require.NoError(t, repo.Reserve(&Booking{GroundID: g.ID, UserID: 3, SlotStart: start2, SlotEnd: end2, Amount: 1200}))

	mine, err := repo.GetBookingsByUserID(2)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.EqualValues(t, 2, mine[0].UserID)
}
