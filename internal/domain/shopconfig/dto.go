package shopconfig

import (
	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateConfigRequest struct {
	Latitude            *float64 `json:"latitude,omitempty"`
	Longitude           *float64 `json:"longitude,omitempty"`
	AllowedRadiusMeters *float64 `json:"allowed_radius_meters,omitempty"`
	WorkStartTime       *string  `json:"work_start_time,omitempty"` // HH:MM

	Tier1Amount   *decimal.Decimal `json:"tier1_amount,omitempty"`
	Tier2Amount   *decimal.Decimal `json:"tier2_amount,omitempty"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
	PerMinuteRate *decimal.Decimal `json:"per_minute_rate,omitempty"`

	AttendanceBonusAmount *decimal.Decimal `json:"attendance_bonus_amount,omitempty"`
	AdvanceLimit          *decimal.Decimal `json:"advance_limit,omitempty"`
	TaskPenaltyAmount     *decimal.Decimal `json:"task_penalty_amount,omitempty"`

	RankingRewards map[string]decimal.Decimal `json:"ranking_rewards,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.AllowedRadiusMeters != nil && *r.AllowedRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_meters",
			Message: "allowed_radius_meters must be positive",
		})
	}

	if r.WorkStartTime != nil && !validator.IsValidClockTime(*r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}

	for field, amount := range map[string]*decimal.Decimal{
		"tier1_amount":            r.Tier1Amount,
		"tier2_amount":            r.Tier2Amount,
		"max_amount":              r.MaxAmount,
		"per_minute_rate":         r.PerMinuteRate,
		"attendance_bonus_amount": r.AttendanceBonusAmount,
		"advance_limit":           r.AdvanceLimit,
		"task_penalty_amount":     r.TaskPenaltyAmount,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}

	for rank, amount := range r.RankingRewards {
		if !validator.IsNumeric(rank) {
			errs = append(errs, validator.ValidationError{
				Field:   "ranking_rewards",
				Message: "reward keys must be numeric ranks",
			})
		} else if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "ranking_rewards",
				Message: "reward amounts must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply overlays the request's non-nil fields onto an existing config,
// producing the next version.
func (r *UpdateConfigRequest) Apply(cfg Config) Config {
	if r.Latitude != nil {
		cfg.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		cfg.Longitude = *r.Longitude
	}
	if r.AllowedRadiusMeters != nil {
		cfg.AllowedRadiusMeters = *r.AllowedRadiusMeters
	}
	if r.WorkStartTime != nil {
		cfg.WorkStartTime = *r.WorkStartTime
	}
	if r.Tier1Amount != nil {
		cfg.Tier1Amount = *r.Tier1Amount
	}
	if r.Tier2Amount != nil {
		cfg.Tier2Amount = *r.Tier2Amount
	}
	if r.MaxAmount != nil {
		cfg.MaxAmount = *r.MaxAmount
	}
	if r.PerMinuteRate != nil {
		cfg.PerMinuteRate = *r.PerMinuteRate
	}
	if r.AttendanceBonusAmount != nil {
		cfg.AttendanceBonusAmount = *r.AttendanceBonusAmount
	}
	if r.AdvanceLimit != nil {
		cfg.AdvanceLimit = *r.AdvanceLimit
	}
	if r.TaskPenaltyAmount != nil {
		cfg.TaskPenaltyAmount = *r.TaskPenaltyAmount
	}
	if r.RankingRewards != nil {
		cfg.RankingRewards = r.RankingRewards
	}
	return cfg
}

type ConfigResponse struct {
	ID                    string                     `json:"id"`
	Latitude              float64                    `json:"latitude"`
	Longitude             float64                    `json:"longitude"`
	AllowedRadiusMeters   float64                    `json:"allowed_radius_meters"`
	WorkStartTime         string                     `json:"work_start_time"`
	Tier1Amount           decimal.Decimal            `json:"tier1_amount"`
	Tier2Amount           decimal.Decimal            `json:"tier2_amount"`
	MaxAmount             decimal.Decimal            `json:"max_amount"`
	PerMinuteRate         decimal.Decimal            `json:"per_minute_rate"`
	AttendanceBonusAmount decimal.Decimal            `json:"attendance_bonus_amount"`
	AdvanceLimit          decimal.Decimal            `json:"advance_limit"`
	TaskPenaltyAmount     decimal.Decimal            `json:"task_penalty_amount"`
	RankingRewards        map[string]decimal.Decimal `json:"ranking_rewards"`
	UpdatedAt             string                     `json:"updated_at"`
}

// MapConfigToResponse converts a Config entity to ConfigResponse.
func MapConfigToResponse(cfg Config) ConfigResponse {
	return ConfigResponse{
		ID:                    cfg.ID,
		Latitude:              cfg.Latitude,
		Longitude:             cfg.Longitude,
		AllowedRadiusMeters:   cfg.AllowedRadiusMeters,
		WorkStartTime:         cfg.WorkStartTime,
		Tier1Amount:           cfg.Tier1Amount,
		Tier2Amount:           cfg.Tier2Amount,
		MaxAmount:             cfg.MaxAmount,
		PerMinuteRate:         cfg.PerMinuteRate,
		AttendanceBonusAmount: cfg.AttendanceBonusAmount,
		AdvanceLimit:          cfg.AdvanceLimit,
		TaskPenaltyAmount:     cfg.TaskPenaltyAmount,
		RankingRewards:        cfg.RankingRewards,
		UpdatedAt:             cfg.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
