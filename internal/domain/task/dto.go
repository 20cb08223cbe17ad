package task

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTemplateRequest struct {
	Station       string          `json:"station"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DeadlineTime  string          `json:"deadline_time"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
}

func (r *CreateTemplateRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if validator.IsEmpty(r.Station) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "station",
			Message: "station is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if !validator.IsEmpty(r.DeadlineTime) && !validator.IsValidClockTime(r.DeadlineTime) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "deadline_time",
			Message: "deadline_time must be in HH:MM format",
		})
	}

	if r.PenaltyAmount.IsNegative() {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "penalty_amount",
			Message: "penalty_amount must not be negative",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

type CompleteInstanceRequest struct {
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CompleteInstanceRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if r.FileHeader != nil {
		extension := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(extension, []string{".jpg", ".jpeg", ".png"}) {
			validationErrors = append(validationErrors, validator.ValidationError{
				Field:   "file",
				Message: "file must be a jpg, jpeg, or png image",
			})
		}

		if r.FileHeader.Size > 10*1024*1024 {
			validationErrors = append(validationErrors, validator.ValidationError{
				Field:   "file",
				Message: "file must not exceed 10MB",
			})
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

type TemplateResponse struct {
	ID            string          `json:"id"`
	Station       string          `json:"station"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	DeadlineTime  string          `json:"deadline_time"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

type InstanceResponse struct {
	ID          string    `json:"id"`
	AssignedTo  string    `json:"assigned_to"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	ProofRef    *string   `json:"proof_ref,omitempty"`
	Day         time.Time `json:"day"`
}

type ReconcileResponse struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}

func MapTemplateToResponse(template Template) TemplateResponse {
	return TemplateResponse{
		ID:            template.ID,
		Station:       template.Station,
		Title:         template.Title,
		Description:   template.Description,
		DeadlineTime:  template.DeadlineTime,
		PenaltyAmount: template.PenaltyAmount,
		CreatedAt:     template.CreatedAt,
	}
}

func MapInstanceToResponse(instance Instance) InstanceResponse {
	return InstanceResponse{
		ID:          instance.ID,
		AssignedTo:  instance.AssignedTo,
		Title:       instance.Title,
		Description: instance.Description,
		IsCompleted: instance.IsCompleted,
		ProofRef:    instance.ProofRef,
		Day:         instance.Day,
	}
}
