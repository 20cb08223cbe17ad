package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute_FullMonthWithBonus(t *testing.T) {
	in := Inputs{
		DailyRate:             decimal.NewFromInt(50),
		StartDate:             time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		DaysWorked:            26,
		PenaltyTotal:          decimal.Zero,
		AttendanceBonusAmount: decimal.NewFromInt(30),
		RankingReward:         decimal.Zero,
		AdvanceTotal:          decimal.Zero,
	}

	breakdown := Compute(in, 2025, time.July)

	assert.True(t, breakdown.Basic.Equal(decimal.NewFromInt(1300)))
	assert.True(t, breakdown.Bonus.Equal(decimal.NewFromInt(30)))
	assert.True(t, breakdown.Penalty.IsZero())
	assert.True(t, breakdown.NetAmount.Equal(decimal.NewFromInt(1330)))
}

func TestCompute_BonusThreshold(t *testing.T) {
	in := Inputs{
		DailyRate:             decimal.NewFromInt(50),
		DaysWorked:            25,
		AttendanceBonusAmount: decimal.NewFromInt(30),
	}

	breakdown := Compute(in, 2025, time.July)

	assert.True(t, breakdown.AttendanceBonus.IsZero())
	assert.True(t, breakdown.NetAmount.Equal(decimal.NewFromInt(1250)))
}

func TestCompute_OnboardingChargedFirstMonthOnly(t *testing.T) {
	in := Inputs{
		DailyRate:          decimal.NewFromInt(50),
		StartDate:          time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		OnboardingKitTotal: decimal.NewFromInt(120),
		DaysWorked:         10,
	}

	july := Compute(in, 2025, time.July)
	assert.True(t, july.OnboardingDeduction.Equal(decimal.NewFromInt(120)))
	assert.True(t, july.NetAmount.Equal(decimal.NewFromInt(380)))

	august := Compute(in, 2025, time.August)
	assert.True(t, august.OnboardingDeduction.IsZero())
	assert.True(t, august.NetAmount.Equal(decimal.NewFromInt(500)))
}

func TestCompute_NetHasNoFloor(t *testing.T) {
	in := Inputs{
		DailyRate:          decimal.NewFromInt(50),
		StartDate:          time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		OnboardingKitTotal: decimal.NewFromInt(300),
		DaysWorked:         2,
		PenaltyTotal:       decimal.NewFromInt(20),
		AdvanceTotal:       decimal.NewFromInt(50),
	}

	breakdown := Compute(in, 2025, time.July)

	assert.True(t, breakdown.NetAmount.Equal(decimal.NewFromInt(-270)))
}

func TestCompute_RankingRewardAddsToBonus(t *testing.T) {
	in := Inputs{
		DailyRate:             decimal.NewFromInt(40),
		DaysWorked:            26,
		AttendanceBonusAmount: decimal.NewFromInt(30),
		RankingReward:         decimal.NewFromInt(100),
	}

	breakdown := Compute(in, 2025, time.July)

	assert.True(t, breakdown.Bonus.Equal(decimal.NewFromInt(130)))
	assert.True(t, breakdown.NetAmount.Equal(decimal.NewFromInt(1170)))
}

func TestCompute_Deterministic(t *testing.T) {
	in := Inputs{
		DailyRate:             decimal.NewFromFloat(52.5),
		StartDate:             time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		OnboardingKitTotal:    decimal.NewFromInt(90),
		DaysWorked:            22,
		PenaltyTotal:          decimal.NewFromInt(15),
		LeaveDays:             3,
		AttendanceBonusAmount: decimal.NewFromInt(30),
		RankingReward:         decimal.NewFromInt(50),
		AdvanceTotal:          decimal.NewFromInt(200),
	}

	first := Compute(in, 2025, time.July)
	second := Compute(in, 2025, time.July)

	assert.True(t, first.NetAmount.Equal(second.NetAmount))
	assert.Equal(t, first, second)
}
