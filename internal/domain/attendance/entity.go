package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusLate || s == StatusAbsent
}

type Record struct {
	ID            string
	StaffID       string
	Date          time.Time // work day, truncated to midnight
	ClockIn       time.Time
	Latitude      float64
	Longitude     float64
	Status        Status
	PenaltyAmount decimal.Decimal
	SelfieRef     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	StaffName *string
}

// MonthlySummary aggregates a staff member's records for one month.
type MonthlySummary struct {
	DaysWorked   int
	PenaltyTotal decimal.Decimal
}
