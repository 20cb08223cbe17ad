package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceBonusMinDays is the worked-day threshold for the monthly
// attendance bonus.
const AttendanceBonusMinDays = 26

// Inputs is a fixed snapshot of everything the breakdown derives from.
// Computing twice over the same snapshot yields the same result.
type Inputs struct {
	DailyRate          decimal.Decimal
	StartDate          time.Time
	OnboardingKitTotal decimal.Decimal

	DaysWorked   int
	PenaltyTotal decimal.Decimal
	LeaveDays    int

	AttendanceBonusAmount decimal.Decimal
	RankingReward         decimal.Decimal
	AdvanceTotal          decimal.Decimal
}

// Compute derives the monthly breakdown from a snapshot. The onboarding kit
// is charged only in the staff member's start month; the net amount has no
// floor, a negative result is surfaced as-is.
func Compute(in Inputs, year int, month time.Month) Breakdown {
	basic := in.DailyRate.Mul(decimal.NewFromInt(int64(in.DaysWorked)))

	attendanceBonus := decimal.Zero
	if in.DaysWorked >= AttendanceBonusMinDays {
		attendanceBonus = in.AttendanceBonusAmount
	}

	bonus := attendanceBonus.Add(in.RankingReward)

	onboardingDeduction := decimal.Zero
	if in.StartDate.Year() == year && in.StartDate.Month() == month {
		onboardingDeduction = in.OnboardingKitTotal
	}

	net := basic.Add(bonus).
		Sub(in.PenaltyTotal).
		Sub(onboardingDeduction).
		Sub(in.AdvanceTotal)

	return Breakdown{
		DaysWorked:          in.DaysWorked,
		LeaveDays:           in.LeaveDays,
		Basic:               basic,
		AttendanceBonus:     attendanceBonus,
		RankingBonus:        in.RankingReward,
		Bonus:               bonus,
		Penalty:             in.PenaltyTotal,
		OnboardingDeduction: onboardingDeduction,
		AdvanceDeduction:    in.AdvanceTotal,
		NetAmount:           net,
	}
}
