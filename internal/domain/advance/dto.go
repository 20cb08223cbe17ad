package advance

import (
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (r *SubmitAdvanceRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if !r.Amount.IsPositive() {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

type DecideAdvanceRequest struct {
	Status string `json:"status"`
}

func (r *DecideAdvanceRequest) Validate() error {
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

type RequestResponse struct {
	ID        string          `json:"id"`
	StaffID   string          `json:"staff_id"`
	StaffName *string         `json:"staff_name,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func MapRequestToResponse(request Request) RequestResponse {
	return RequestResponse{
		ID:        request.ID,
		StaffID:   request.StaffID,
		StaffName: request.StaffName,
		Amount:    request.Amount,
		Reason:    request.Reason,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
	}
}
