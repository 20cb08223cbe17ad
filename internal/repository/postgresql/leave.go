package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/leave"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, application *leave.Application) error {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_applications (staff_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		application.StaffID,
		application.Type,
		application.StartDate,
		application.EndDate,
		application.Reason,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create leave application: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Application, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, staff_id, type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_applications
		WHERE id = $1
	`

	var application leave.Application
	err := q.QueryRow(ctx, query, id).Scan(
		&application.ID, &application.StaffID, &application.Type,
		&application.StartDate, &application.EndDate, &application.Reason,
		&application.Status, &application.CreatedAt, &application.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, fmt.Errorf("failed to get leave application: %w", err)
	}

	return application, nil
}

// ListByStaff implements leave.LeaveRepository.
func (l *leaveRepository) ListByStaff(ctx context.Context, staffID string) ([]leave.Application, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, staff_id, type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_applications
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave applications: %w", err)
	}
	defer rows.Close()

	return scanLeaveApplications(rows)
}

// ListPending implements leave.LeaveRepository.
func (l *leaveRepository) ListPending(ctx context.Context) ([]leave.Application, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT la.id, la.staff_id, la.type, la.start_date, la.end_date, la.reason,
			   la.status, la.created_at, la.updated_at,
			   s.full_name AS staff_name
		FROM leave_applications la
		LEFT JOIN staff_members s ON s.id = la.staff_id
		WHERE la.status = 'pending'
		ORDER BY la.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		var application leave.Application
		err := rows.Scan(
			&application.ID, &application.StaffID, &application.Type,
			&application.StartDate, &application.EndDate, &application.Reason,
			&application.Status, &application.CreatedAt, &application.UpdatedAt,
			&application.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, application)
	}

	return applications, nil
}

// ListApprovedOverlappingMonth implements leave.LeaveRepository.
func (l *leaveRepository) ListApprovedOverlappingMonth(ctx context.Context, staffID string, year int, month time.Month) ([]leave.Application, error) {
	q := GetQuerier(ctx, l.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, staff_id, type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_applications
		WHERE staff_id = $1
		  AND status = 'approved'
		  AND start_date < $3
		  AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, staffID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved leave applications: %w", err)
	}
	defer rows.Close()

	return scanLeaveApplications(rows)
}

// UpdateStatus implements leave.LeaveRepository.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update leave application status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}

func scanLeaveApplications(rows pgx.Rows) ([]leave.Application, error) {
	var applications []leave.Application
	for rows.Next() {
		var application leave.Application
		err := rows.Scan(
			&application.ID, &application.StaffID, &application.Type,
			&application.StartDate, &application.EndDate, &application.Reason,
			&application.Status, &application.CreatedAt, &application.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, application)
	}

	return applications, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
