package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string) (staff.Member, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, full_name, station, role, daily_rate, start_date, onboarding_kit,
			   created_at, updated_at
		FROM staff_members
		WHERE id = $1
	`

	var member staff.Member
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.FullName, &member.Station, &member.Role,
		&member.DailyRate, &member.StartDate, &member.OnboardingKit,
		&member.CreatedAt, &member.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Member{}, staff.ErrStaffNotFound
		}
		return staff.Member{}, fmt.Errorf("failed to get staff member by ID: %w", err)
	}

	return member, nil
}

// List implements staff.StaffRepository.
func (s *staffRepository) List(ctx context.Context) ([]staff.Member, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, full_name, station, role, daily_rate, start_date, onboarding_kit,
			   created_at, updated_at
		FROM staff_members
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	var members []staff.Member
	for rows.Next() {
		var member staff.Member
		err := rows.Scan(
			&member.ID, &member.FullName, &member.Station, &member.Role,
			&member.DailyRate, &member.StartDate, &member.OnboardingKit,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// ListManagers implements staff.StaffRepository.
func (s *staffRepository) ListManagers(ctx context.Context) ([]staff.Member, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, full_name, station, role, daily_rate, start_date, onboarding_kit,
			   created_at, updated_at
		FROM staff_members
		WHERE role IN ('manager', 'supervisor')
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query managers: %w", err)
	}
	defer rows.Close()

	var members []staff.Member
	for rows.Next() {
		var member staff.Member
		err := rows.Scan(
			&member.ID, &member.FullName, &member.Station, &member.Role,
			&member.DailyRate, &member.StartDate, &member.OnboardingKit,
			&member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// UpdateStation implements staff.StaffRepository.
func (s *staffRepository) UpdateStation(ctx context.Context, id string, station string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE staff_members
		SET station = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, station, id)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}
