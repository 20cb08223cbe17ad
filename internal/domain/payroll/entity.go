package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Breakdown is the computed salary figure for one staff member and month.
// LeaveDays is informational and does not feed the net amount.
type Breakdown struct {
	DaysWorked          int             `json:"days_worked"`
	LeaveDays           int             `json:"leave_days"`
	Basic               decimal.Decimal `json:"basic"`
	AttendanceBonus     decimal.Decimal `json:"attendance_bonus"`
	RankingBonus        decimal.Decimal `json:"ranking_bonus"`
	Bonus               decimal.Decimal `json:"bonus"`
	Penalty             decimal.Decimal `json:"penalty"`
	OnboardingDeduction decimal.Decimal `json:"onboarding_deduction"`
	AdvanceDeduction    decimal.Decimal `json:"advance_deduction"`
	NetAmount           decimal.Decimal `json:"net_amount"`
}

// Record is the persisted payment row. The breakdown stored here is frozen
// at the moment payment was recorded.
type Record struct {
	ID          string `json:"id"`
	StaffID     string `json:"staff_id"`
	PeriodYear  int    `json:"period_year"`
	PeriodMonth int    `json:"period_month"`

	Breakdown

	Status        Status     `json:"status"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	ProofRef      *string    `json:"proof_ref,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
