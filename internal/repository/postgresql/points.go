package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/points"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type pointsRepository struct {
	db *database.DB
}

// Apply implements points.PointsRepository. The upsert makes lazy row
// creation atomic, so two concurrent adjustments never race a check-then-insert.
func (p *pointsRepository) Apply(ctx context.Context, staffID string, month string, adj points.Adjustment) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO monthly_points (staff_id, month, points, good_deeds, bad_deeds)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (staff_id, month) DO UPDATE
		SET points = monthly_points.points + EXCLUDED.points,
			good_deeds = monthly_points.good_deeds + EXCLUDED.good_deeds,
			bad_deeds = monthly_points.bad_deeds + EXCLUDED.bad_deeds,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, staffID, month, adj.Points, adj.GoodDeeds, adj.BadDeeds); err != nil {
		return fmt.Errorf("failed to apply points adjustment: %w", err)
	}

	return nil
}

// GetByStaffAndMonth implements points.PointsRepository.
func (p *pointsRepository) GetByStaffAndMonth(ctx context.Context, staffID string, month string) (points.MonthlyPoints, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT staff_id, month, points, good_deeds, bad_deeds, updated_at
		FROM monthly_points
		WHERE staff_id = $1
		  AND month = $2
	`

	var row points.MonthlyPoints
	err := q.QueryRow(ctx, query, staffID, month).Scan(
		&row.StaffID, &row.Month, &row.Points, &row.GoodDeeds, &row.BadDeeds, &row.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return points.MonthlyPoints{StaffID: staffID, Month: month}, nil
		}
		return points.MonthlyPoints{}, fmt.Errorf("failed to get points row: %w", err)
	}

	return row, nil
}

// ListByMonth implements points.PointsRepository.
func (p *pointsRepository) ListByMonth(ctx context.Context, month string) ([]points.MonthlyPoints, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT mp.staff_id, mp.month, mp.points, mp.good_deeds, mp.bad_deeds, mp.updated_at,
			   s.full_name AS staff_name
		FROM monthly_points mp
		LEFT JOIN staff_members s ON s.id = mp.staff_id
		WHERE mp.month = $1
		ORDER BY mp.staff_id ASC
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query points rows: %w", err)
	}
	defer rows.Close()

	var result []points.MonthlyPoints
	for rows.Next() {
		var row points.MonthlyPoints
		err := rows.Scan(
			&row.StaffID, &row.Month, &row.Points, &row.GoodDeeds, &row.BadDeeds, &row.UpdatedAt,
			&row.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan points row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func NewPointsRepository(db *database.DB) points.PointsRepository {
	return &pointsRepository{db: db}
}
