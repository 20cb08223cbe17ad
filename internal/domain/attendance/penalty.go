package attendance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Tier boundaries in minutes. The tiers are deliberate step functions
// (business policy), not a continuous penalty curve.
const (
	tier1LimitMinutes = 15
	tier2LimitMinutes = 30
)

// PenaltyTiers carries the configured lateness brackets. PerMinuteRate is
// the legacy fallback used only when every tier amount is zero.
type PenaltyTiers struct {
	Tier1Amount   decimal.Decimal // 0 < minutes <= 15
	Tier2Amount   decimal.Decimal // 15 < minutes <= 30
	MaxAmount     decimal.Decimal // minutes > 30
	PerMinuteRate decimal.Decimal
}

// ClassifyLateness turns minutes of lateness into a status and a monetary
// penalty. First matching rule wins; status is late whenever minutesLate is
// positive, regardless of which rule priced it.
func ClassifyLateness(minutesLate int, tiers PenaltyTiers) (Status, decimal.Decimal) {
	if minutesLate <= 0 {
		return StatusPresent, decimal.Zero
	}

	switch {
	case minutesLate > tier2LimitMinutes && tiers.MaxAmount.IsPositive():
		return StatusLate, tiers.MaxAmount
	case minutesLate > tier1LimitMinutes && tiers.Tier2Amount.IsPositive():
		return StatusLate, tiers.Tier2Amount
	case tiers.Tier1Amount.IsPositive():
		return StatusLate, tiers.Tier1Amount
	}

	// No tiers configured: legacy per-minute pricing.
	return StatusLate, decimal.NewFromInt(int64(minutesLate)).Mul(tiers.PerMinuteRate)
}

// LateMinutes returns whole minutes between the scheduled work start and the
// actual clock-in. Negative when the clock-in is early.
func LateMinutes(clockIn, workStart time.Time) int {
	diff := clockIn.Sub(workStart).Minutes()
	return int(math.Floor(diff))
}
