package staff

import (
	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
)

type MemberResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Station   string    `json:"station"`
	Role      string    `json:"role"`
	DailyRate string    `json:"daily_rate"`
	StartDate string    `json:"start_date"`
	Kit       []KitItem `json:"onboarding_kit,omitempty"`
}

type UpdateStationRequest struct {
	ID      string `json:"-"`
	Station string `json:"station"`
}

func (r *UpdateStationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Station) {
		errs = append(errs, validator.ValidationError{
			Field:   "station",
			Message: "station is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MapMemberToResponse converts a Member entity to MemberResponse.
func MapMemberToResponse(member Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		FullName:  member.FullName,
		Station:   member.Station,
		Role:      string(member.Role),
		DailyRate: member.DailyRate.String(),
		StartDate: member.StartDate.Format("2006-01-02"),
		Kit:       member.OnboardingKit,
	}
}
