package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/payroll"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

// GetByStaffAndPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetByStaffAndPeriod(ctx context.Context, staffID string, year int, month int) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, staff_id, period_year, period_month,
			   days_worked, leave_days, basic, attendance_bonus, ranking_bonus, bonus,
			   penalty, onboarding_deduction, advance_deduction, net_amount,
			   status, payment_method, proof_ref, paid_at, created_at, updated_at
		FROM payroll_records
		WHERE staff_id = $1
		  AND period_year = $2
		  AND period_month = $3
	`

	var record payroll.Record
	err := q.QueryRow(ctx, query, staffID, year, month).Scan(
		&record.ID, &record.StaffID, &record.PeriodYear, &record.PeriodMonth,
		&record.DaysWorked, &record.LeaveDays, &record.Basic,
		&record.AttendanceBonus, &record.RankingBonus, &record.Bonus,
		&record.Penalty, &record.OnboardingDeduction, &record.AdvanceDeduction, &record.NetAmount,
		&record.Status, &record.PaymentMethod, &record.ProofRef, &record.PaidAt,
		&record.CreatedAt, &record.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// Upsert implements payroll.PayrollRepository. The stored breakdown is the
// one frozen at payment time; a later upsert for the same period overwrites
// it wholesale.
func (p *payrollRepository) Upsert(ctx context.Context, record *payroll.Record) error {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			staff_id, period_year, period_month,
			days_worked, leave_days, basic, attendance_bonus, ranking_bonus, bonus,
			penalty, onboarding_deduction, advance_deduction, net_amount,
			status, payment_method, proof_ref, paid_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (staff_id, period_year, period_month) DO UPDATE
		SET days_worked = EXCLUDED.days_worked,
			leave_days = EXCLUDED.leave_days,
			basic = EXCLUDED.basic,
			attendance_bonus = EXCLUDED.attendance_bonus,
			ranking_bonus = EXCLUDED.ranking_bonus,
			bonus = EXCLUDED.bonus,
			penalty = EXCLUDED.penalty,
			onboarding_deduction = EXCLUDED.onboarding_deduction,
			advance_deduction = EXCLUDED.advance_deduction,
			net_amount = EXCLUDED.net_amount,
			status = EXCLUDED.status,
			payment_method = EXCLUDED.payment_method,
			proof_ref = EXCLUDED.proof_ref,
			paid_at = EXCLUDED.paid_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.PeriodYear,
		record.PeriodMonth,
		record.DaysWorked,
		record.LeaveDays,
		record.Basic,
		record.AttendanceBonus,
		record.RankingBonus,
		record.Bonus,
		record.Penalty,
		record.OnboardingDeduction,
		record.AdvanceDeduction,
		record.NetAmount,
		record.Status,
		record.PaymentMethod,
		record.ProofRef,
		record.PaidAt,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) ListByPeriod(ctx context.Context, year int, month int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, staff_id, period_year, period_month,
			   days_worked, leave_days, basic, attendance_bonus, ranking_bonus, bonus,
			   penalty, onboarding_deduction, advance_deduction, net_amount,
			   status, payment_method, proof_ref, paid_at, created_at, updated_at
		FROM payroll_records
		WHERE period_year = $1
		  AND period_month = $2
		ORDER BY staff_id ASC
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var record payroll.Record
		err := rows.Scan(
			&record.ID, &record.StaffID, &record.PeriodYear, &record.PeriodMonth,
			&record.DaysWorked, &record.LeaveDays, &record.Basic,
			&record.AttendanceBonus, &record.RankingBonus, &record.Bonus,
			&record.Penalty, &record.OnboardingDeduction, &record.AdvanceDeduction, &record.NetAmount,
			&record.Status, &record.PaymentMethod, &record.ProofRef, &record.PaidAt,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
