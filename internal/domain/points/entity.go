package points

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPoints is the per-staff, per-month running point balance. Rows are
// created lazily on first adjustment and points may go negative. The balance
// is fully derived from the sequence of adjustment calls; there is no
// recomputation from raw attendance history.
type MonthlyPoints struct {
	StaffID   string
	Month     string // YYYY-MM
	Points    int
	GoodDeeds int
	BadDeeds  int
	UpdatedAt time.Time

	// DTO
	StaffName *string
}

// RankEntry is one row of the derived monthly ranking.
type RankEntry struct {
	Rank      int
	StaffID   string
	StaffName string
	Points    int
	GoodDeeds int
	BadDeeds  int
	Reward    decimal.Decimal
}

// MonthKey formats a timestamp as the ledger month key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
