package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tiers(t1, t2, max, perMinute int64) PenaltyTiers {
	return PenaltyTiers{
		Tier1Amount:   decimal.NewFromInt(t1),
		Tier2Amount:   decimal.NewFromInt(t2),
		MaxAmount:     decimal.NewFromInt(max),
		PerMinuteRate: decimal.NewFromInt(perMinute),
	}
}

func TestClassifyLateness_OnTimeOrEarly(t *testing.T) {
	for _, minutes := range []int{0, -1, -5, -120} {
		status, penalty := ClassifyLateness(minutes, tiers(5, 10, 20, 2))
		assert.Equal(t, StatusPresent, status, "minutes=%d", minutes)
		assert.True(t, penalty.IsZero(), "minutes=%d", minutes)
	}
}

func TestClassifyLateness_TierBrackets(t *testing.T) {
	cfg := tiers(5, 10, 20, 0)

	tests := []struct {
		minutes int
		penalty int64
	}{
		{1, 5},
		{15, 5},
		{16, 10},
		{20, 10}, // the ">15, <=30" bracket
		{30, 10},
		{31, 20},
		{90, 20},
	}

	for _, tt := range tests {
		status, penalty := ClassifyLateness(tt.minutes, cfg)
		assert.Equal(t, StatusLate, status, "minutes=%d", tt.minutes)
		assert.True(t, penalty.Equal(decimal.NewFromInt(tt.penalty)),
			"minutes=%d: want %d got %s", tt.minutes, tt.penalty, penalty)
	}
}

func TestClassifyLateness_NonDecreasing(t *testing.T) {
	cfg := tiers(5, 10, 20, 0)

	prev := decimal.Zero
	for minutes := 1; minutes <= 120; minutes++ {
		_, penalty := ClassifyLateness(minutes, cfg)
		assert.True(t, penalty.GreaterThanOrEqual(prev),
			"penalty decreased at minutes=%d: %s < %s", minutes, penalty, prev)
		prev = penalty
	}
}

func TestClassifyLateness_PerMinuteFallback(t *testing.T) {
	cfg := tiers(0, 0, 0, 2)

	status, penalty := ClassifyLateness(7, cfg)
	assert.Equal(t, StatusLate, status)
	assert.True(t, penalty.Equal(decimal.NewFromInt(14)))
}

func TestClassifyLateness_PartialTiers(t *testing.T) {
	// Only tier2 configured: >30 min still falls through max to tier2.
	cfg := tiers(0, 10, 0, 1)

	status, penalty := ClassifyLateness(45, cfg)
	assert.Equal(t, StatusLate, status)
	assert.True(t, penalty.Equal(decimal.NewFromInt(10)))

	// Under 15 min with no tier1: per-minute fallback prices it.
	_, penalty = ClassifyLateness(10, cfg)
	assert.True(t, penalty.Equal(decimal.NewFromInt(10)))
}

func TestLateMinutes(t *testing.T) {
	workStart := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 20, LateMinutes(workStart.Add(20*time.Minute), workStart))
	assert.Equal(t, 0, LateMinutes(workStart, workStart))
	assert.Equal(t, -5, LateMinutes(workStart.Add(-5*time.Minute), workStart))
	// Partial minutes floor toward the earlier whole minute.
	assert.Equal(t, 19, LateMinutes(workStart.Add(19*time.Minute+59*time.Second), workStart))
}
