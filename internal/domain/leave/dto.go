package leave

import (
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if validator.IsEmpty(r.Type) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

type DecideLeaveRequest struct {
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

type ApplicationResponse struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	StaffName *string   `json:"staff_name,omitempty"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	Days      int       `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

func MapApplicationToResponse(application Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        application.ID,
		StaffID:   application.StaffID,
		StaffName: application.StaffName,
		Type:      application.Type,
		StartDate: application.StartDate,
		EndDate:   application.EndDate,
		Reason:    application.Reason,
		Status:    application.Status,
		Days:      application.Days(),
		CreatedAt: application.CreatedAt,
	}
}
