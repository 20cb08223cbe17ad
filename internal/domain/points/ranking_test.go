package points

import (
	"testing"

	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestForTransition(t *testing.T) {
	adj := ForTransition(attendance.StatusLate, attendance.StatusPresent)
	assert.Equal(t, Adjustment{Points: 1, GoodDeeds: 1}, adj)

	adj = ForTransition(attendance.StatusPresent, attendance.StatusLate)
	assert.Equal(t, Adjustment{Points: -1, BadDeeds: 1}, adj)

	assert.True(t, ForTransition(attendance.StatusLate, attendance.StatusLate).IsZero())
	assert.True(t, ForTransition(attendance.StatusAbsent, attendance.StatusPresent).IsZero())
	assert.True(t, ForTransition(attendance.StatusLate, attendance.StatusAbsent).IsZero())
}

func TestForTransition_RoundTripNetsToZero(t *testing.T) {
	up := ForTransition(attendance.StatusLate, attendance.StatusPresent)
	down := ForTransition(attendance.StatusPresent, attendance.StatusLate)
	assert.Equal(t, 0, up.Points+down.Points)
}

func rewardTable(amounts ...int64) func(int) decimal.Decimal {
	return func(rank int) decimal.Decimal {
		if rank >= 1 && rank <= len(amounts) {
			return decimal.NewFromInt(amounts[rank-1])
		}
		return decimal.Zero
	}
}

func TestComputeRanking_OrderAndRewards(t *testing.T) {
	rows := []MonthlyPoints{
		{StaffID: "s3", Month: "2025-07", Points: 5, GoodDeeds: 5},
		{StaffID: "s1", Month: "2025-07", Points: 12, GoodDeeds: 12},
		{StaffID: "s2", Month: "2025-07", Points: 8, GoodDeeds: 9, BadDeeds: 1},
	}

	entries := ComputeRanking(rows, rewardTable(100, 50))

	assert.Len(t, entries, 3)
	assert.Equal(t, "s1", entries[0].StaffID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.True(t, entries[0].Reward.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, "s2", entries[1].StaffID)
	assert.True(t, entries[1].Reward.Equal(decimal.NewFromInt(50)))

	// Rank 3 is beyond the reward table.
	assert.Equal(t, "s3", entries[2].StaffID)
	assert.True(t, entries[2].Reward.IsZero())
}

func TestComputeRanking_TieBreaks(t *testing.T) {
	rows := []MonthlyPoints{
		{StaffID: "s2", Points: 10, GoodDeeds: 10},
		{StaffID: "s1", Points: 10, GoodDeeds: 10},
		{StaffID: "s3", Points: 10, GoodDeeds: 12, BadDeeds: 2},
	}

	entries := ComputeRanking(rows, rewardTable())

	// Equal points: more good deeds wins; full tie falls back to staff ID.
	assert.Equal(t, "s3", entries[0].StaffID)
	assert.Equal(t, "s1", entries[1].StaffID)
	assert.Equal(t, "s2", entries[2].StaffID)
}

func TestComputeRanking_DoesNotMutateInput(t *testing.T) {
	rows := []MonthlyPoints{
		{StaffID: "s2", Points: 1},
		{StaffID: "s1", Points: 9},
	}

	ComputeRanking(rows, rewardTable())

	assert.Equal(t, "s2", rows[0].StaffID)
	assert.Equal(t, "s1", rows[1].StaffID)
}
