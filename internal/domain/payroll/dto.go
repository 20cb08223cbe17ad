package payroll

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
)

type BreakdownFilter struct {
	Month string `json:"month"`
}

func (f *BreakdownFilter) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if validator.IsEmpty(f.Month) {
		f.Month = time.Now().Format("2006-01")
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

// Period parses the validated month filter into year and month components.
func (f *BreakdownFilter) Period() (int, time.Month) {
	t, _ := time.Parse("2006-01", f.Month)
	return t.Year(), t.Month()
}

type MarkPaidRequest struct {
	PaymentMethod string                `json:"payment_method"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *MarkPaidRequest) Validate() error {
	validationErrors := validator.ValidationErrors{}

	if validator.IsEmpty(r.PaymentMethod) {
		validationErrors = append(validationErrors, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method is required",
		})
	}

	// A missing proof file is the service's ErrProofRequired, not a field error.
	if r.FileHeader != nil {
		extension := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(extension, []string{".jpg", ".jpeg", ".png", ".pdf"}) {
			validationErrors = append(validationErrors, validator.ValidationError{
				Field:   "file",
				Message: "file must be a jpg, jpeg, png, or pdf",
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

type BreakdownResponse struct {
	StaffID   string  `json:"staff_id"`
	StaffName string  `json:"staff_name,omitempty"`
	Month     string  `json:"month"`
	Breakdown

	Status        Status     `json:"status"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	ProofRef      *string    `json:"proof_ref,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}
