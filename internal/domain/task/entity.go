package task

import (
	"time"

	"github.com/shopspring/decimal"
)

// Template is the definition a daily task instance is generated from.
type Template struct {
	ID            string          `json:"id"`
	Station       string          `json:"station"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DeadlineTime  string          `json:"deadline_time"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Instance is one staff member's task for one calendar day. An instance is
// uniquely identified by (AssignedTo, Title, Day).
type Instance struct {
	ID          string    `json:"id"`
	AssignedTo  string    `json:"assigned_to"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	ProofRef    *string   `json:"proof_ref,omitempty"`
	Day         time.Time `json:"day"`
	CreatedAt   time.Time `json:"created_at"`
}

// DayKey truncates a timestamp to its calendar day in the timestamp's
// location, the identity component instances are keyed on.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
