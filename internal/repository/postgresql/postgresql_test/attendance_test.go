package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupAttendanceData(t *testing.T) {
	ctx := context.Background()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendance_records CASCADE")
	require.NoError(t, err)
	_, err = testDB.Exec(ctx, "TRUNCATE TABLE staff_members CASCADE")
	require.NoError(t, err)
}

func createTestStaff(t *testing.T, ctx context.Context) string {
	var staffID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO staff_members (id, full_name, station, role, daily_rate, start_date, onboarding_kit, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test Staff', 'kitchen', 'staff', 50, '2025-01-01', '[]', NOW(), NOW())
		RETURNING id
	`).Scan(&staffID)
	require.NoError(t, err)
	return staffID
}

func testRecord(staffID string) attendance.Record {
	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	return attendance.Record{
		StaffID:       staffID,
		Date:          day,
		ClockIn:       day.Add(8 * time.Hour),
		Latitude:      -6.2001,
		Longitude:     106.8001,
		Status:        attendance.StatusPresent,
		PenaltyAmount: decimal.Zero,
	}
}

func TestAttendanceRepository_Create_DuplicateDay(t *testing.T) {
	defer cleanupAttendanceData(t)
	cleanupAttendanceData(t)

	ctx := context.Background()
	staffID := createTestStaff(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)

	_, err := repo.Create(ctx, testRecord(staffID))
	require.NoError(t, err)

	// Second clock-in on the same day hits the unique index.
	second := testRecord(staffID)
	second.ClockIn = second.ClockIn.Add(5 * time.Minute)
	_, err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, attendance.ErrDuplicateRecord)
}

func TestAttendanceRepository_Update_StaleGuard(t *testing.T) {
	defer cleanupAttendanceData(t)
	cleanupAttendanceData(t)

	ctx := context.Background()
	staffID := createTestStaff(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)

	created, err := repo.Create(ctx, testRecord(staffID))
	require.NoError(t, err)

	corrected := created
	corrected.Status = attendance.StatusLate
	corrected.PenaltyAmount = decimal.NewFromInt(5)

	updated, err := repo.Update(ctx, corrected, created.UpdatedAt)
	require.NoError(t, err)

	// The first correction bumped updated_at; a write still holding the
	// original timestamp loses.
	stale := corrected
	stale.Status = attendance.StatusPresent
	_, err = repo.Update(ctx, stale, created.UpdatedAt)
	assert.ErrorIs(t, err, attendance.ErrRecordModified)

	// Retrying with the fresh timestamp succeeds.
	_, err = repo.Update(ctx, stale, updated.UpdatedAt)
	assert.NoError(t, err)
}

func TestAttendanceRepository_MonthlySummary(t *testing.T) {
	defer cleanupAttendanceData(t)
	cleanupAttendanceData(t)

	ctx := context.Background()
	staffID := createTestStaff(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)

	for day := 1; day <= 3; day++ {
		record := testRecord(staffID)
		record.Date = time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
		record.ClockIn = record.Date.Add(8 * time.Hour)
		if day == 2 {
			record.Status = attendance.StatusLate
			record.PenaltyAmount = decimal.NewFromInt(10)
		}
		_, err := repo.Create(ctx, record)
		require.NoError(t, err)
	}

	summary, err := repo.MonthlySummary(ctx, staffID, 2025, time.July)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.DaysWorked)
	assert.True(t, summary.PenaltyTotal.Equal(decimal.NewFromInt(10)))
}
