package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

// Create implements attendance.AttendanceRepository. The unique index on
// (staff_id, date) makes the loser of a clock-in race fail here instead of
// passing a check-then-insert.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			staff_id, date, clock_in, latitude, longitude,
			status, penalty_amount, selfie_ref
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.ClockIn,
		record.Latitude,
		record.Longitude,
		record.Status,
		record.PenaltyAmount,
		record.SelfieRef,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, date, clock_in, latitude, longitude,
			   status, penalty_amount, selfie_ref, created_at, updated_at
		FROM attendance_records
		WHERE staff_id = $1
		  AND date = $2
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, staffID, date).Scan(
		&record.ID, &record.StaffID, &record.Date, &record.ClockIn,
		&record.Latitude, &record.Longitude,
		&record.Status, &record.PenaltyAmount, &record.SelfieRef,
		&record.CreatedAt, &record.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by staff and date: %w", err)
	}

	return record, nil
}

// Update implements attendance.AttendanceRepository. The updated_at guard
// serializes concurrent corrections of the same record.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record, expectedUpdatedAt time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $1, status = $2, penalty_amount = $3, updated_at = NOW()
		WHERE id = $4
		  AND updated_at = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ClockIn,
		record.Status,
		record.PenaltyAmount,
		record.ID,
		expectedUpdatedAt,
	).Scan(&record.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordModified
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return record, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.StaffID != nil && *filter.StaffID != "" {
		baseWhere += fmt.Sprintf(" AND a.staff_id = $%d", argIdx)
		args = append(args, *filter.StaffID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.staff_id, a.date, a.clock_in, a.latitude, a.longitude,
			   a.status, a.penalty_amount, a.selfie_ref, a.created_at, a.updated_at,
			   s.full_name AS staff_name
		FROM attendance_records a
		LEFT JOIN staff_members s ON s.id = a.staff_id
		WHERE %s
		ORDER BY a.date DESC, a.clock_in DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		err := rows.Scan(
			&record.ID, &record.StaffID, &record.Date, &record.ClockIn,
			&record.Latitude, &record.Longitude,
			&record.Status, &record.PenaltyAmount, &record.SelfieRef,
			&record.CreatedAt, &record.UpdatedAt,
			&record.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// MonthlySummary implements attendance.AttendanceRepository.
func (a *attendanceRepository) MonthlySummary(ctx context.Context, staffID string, year int, month time.Month) (attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT COUNT(*), COALESCE(SUM(penalty_amount), 0)
		FROM attendance_records
		WHERE staff_id = $1
		  AND date >= $2
		  AND date < $3
	`

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, staffID, monthStart, monthEnd).Scan(
		&summary.DaysWorked, &summary.PenaltyTotal,
	)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return summary, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
