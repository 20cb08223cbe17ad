package shopconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config is the shop-wide configuration. Rows are append-only: every update
// inserts a new version and the latest updated_at wins. Computation call
// sites load the latest version explicitly and pass it down by value, so a
// config change never re-prices historical attendance.
type Config struct {
	ID                  string
	Latitude            float64
	Longitude           float64
	AllowedRadiusMeters float64
	WorkStartTime       string // "HH:MM", shop local time

	// Lateness penalty tiers: 0-15 min, 15-30 min, >30 min. All-zero tiers
	// fall back to the legacy per-minute rate.
	Tier1Amount   decimal.Decimal
	Tier2Amount   decimal.Decimal
	MaxAmount     decimal.Decimal
	PerMinuteRate decimal.Decimal

	AttendanceBonusAmount decimal.Decimal
	AdvanceLimit          decimal.Decimal
	TaskPenaltyAmount     decimal.Decimal

	// RankingRewards maps rank (as a string key, "1", "2", ...) to a reward
	// amount. Ranks beyond the table earn zero.
	RankingRewards map[string]decimal.Decimal

	UpdatedAt time.Time
}

// RewardForRank looks up the reward for a 1-based rank; unknown ranks earn 0.
func (c Config) RewardForRank(rank int) decimal.Decimal {
	if c.RankingRewards == nil {
		return decimal.Zero
	}
	if amount, ok := c.RankingRewards[strconv.Itoa(rank)]; ok {
		return amount
	}
	return decimal.Zero
}

// WorkStartOn resolves WorkStartTime ("HH:MM") against a calendar day in
// that day's location.
func (c Config) WorkStartOn(day time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", c.WorkStartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid work start time %q: %w", c.WorkStartTime, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
