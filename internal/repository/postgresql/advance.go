package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/advance"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type advanceRepository struct {
	db *database.DB
}

// Create implements advance.AdvanceRepository.
func (a *advanceRepository) Create(ctx context.Context, request *advance.Request) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO advance_requests (staff_id, amount, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.StaffID,
		request.Amount,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create advance request: %w", err)
	}

	return nil
}

// GetByID implements advance.AdvanceRepository.
func (a *advanceRepository) GetByID(ctx context.Context, id string) (advance.Request, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, amount, reason, status, created_at, updated_at
		FROM advance_requests
		WHERE id = $1
	`

	var request advance.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.StaffID, &request.Amount, &request.Reason,
		&request.Status, &request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Request{}, advance.ErrRequestNotFound
		}
		return advance.Request{}, fmt.Errorf("failed to get advance request: %w", err)
	}

	return request, nil
}

// ListByStaff implements advance.AdvanceRepository.
func (a *advanceRepository) ListByStaff(ctx context.Context, staffID string) ([]advance.Request, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, staff_id, amount, reason, status, created_at, updated_at
		FROM advance_requests
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance requests: %w", err)
	}
	defer rows.Close()

	var requests []advance.Request
	for rows.Next() {
		var request advance.Request
		err := rows.Scan(
			&request.ID, &request.StaffID, &request.Amount, &request.Reason,
			&request.Status, &request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// ListPending implements advance.AdvanceRepository.
func (a *advanceRepository) ListPending(ctx context.Context) ([]advance.Request, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.staff_id, ar.amount, ar.reason, ar.status,
			   ar.created_at, ar.updated_at,
			   s.full_name AS staff_name
		FROM advance_requests ar
		LEFT JOIN staff_members s ON s.id = ar.staff_id
		WHERE ar.status = 'pending'
		ORDER BY ar.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending advance requests: %w", err)
	}
	defer rows.Close()

	var requests []advance.Request
	for rows.Next() {
		var request advance.Request
		err := rows.Scan(
			&request.ID, &request.StaffID, &request.Amount, &request.Reason,
			&request.Status, &request.CreatedAt, &request.UpdatedAt,
			&request.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, nil
}

// UpdateStatus implements advance.AdvanceRepository.
func (a *advanceRepository) UpdateStatus(ctx context.Context, id string, status advance.Status) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE advance_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update advance request status: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return advance.ErrRequestNotFound
	}

	return nil
}

// SumApprovedInMonth implements advance.AdvanceRepository.
func (a *advanceRepository) SumApprovedInMonth(ctx context.Context, staffID string, year int, month time.Month) (decimal.Decimal, error) {
	q := GetQuerier(ctx, a.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advance_requests
		WHERE staff_id = $1
		  AND status = 'approved'
		  AND created_at >= $2
		  AND created_at < $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, staffID, monthStart, monthEnd).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum approved advances: %w", err)
	}

	return total, nil
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}
