package points

import (
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RankingEntryResponse struct {
	Rank      int             `json:"rank"`
	StaffID   string          `json:"staff_id"`
	StaffName string          `json:"staff_name"`
	Points    int             `json:"points"`
	GoodDeeds int             `json:"good_deeds"`
	BadDeeds  int             `json:"bad_deeds"`
	Reward    decimal.Decimal `json:"reward"`
}

type BalanceResponse struct {
	StaffID   string    `json:"staff_id"`
	Month     string    `json:"month"`
	Points    int       `json:"points"`
	GoodDeeds int       `json:"good_deeds"`
	BadDeeds  int       `json:"bad_deeds"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RankingFilter struct {
	Month string `json:"month"`
}

func (f *RankingFilter) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if validator.IsEmpty(f.Month) {
		f.Month = MonthKey(time.Now())
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func MapEntryToResponse(entry RankEntry) RankingEntryResponse {
	return RankingEntryResponse{
		Rank:      entry.Rank,
		StaffID:   entry.StaffID,
		StaffName: entry.StaffName,
		Points:    entry.Points,
		GoodDeeds: entry.GoodDeeds,
		BadDeeds:  entry.BadDeeds,
		Reward:    entry.Reward,
	}
}

func MapBalanceToResponse(balance MonthlyPoints) BalanceResponse {
	return BalanceResponse{
		StaffID:   balance.StaffID,
		Month:     balance.Month,
		Points:    balance.Points,
		GoodDeeds: balance.GoodDeeds,
		BadDeeds:  balance.BadDeeds,
		UpdatedAt: balance.UpdatedAt,
	}
}
