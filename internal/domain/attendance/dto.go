package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	SelfieRef  *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "clock-in selfie is required",
		})
	} else {
		filename := r.FileHeader.Filename
		ext := ""
		if idx := strings.LastIndex(filename, "."); idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "selfie size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectRecordRequest fixes an existing record. The record is identified by
// (staff_id, day of new_clock_in); status and penalty are re-derived from
// new_clock_in using the current shop config. OverrideStatus replaces the
// derived status; OverridePenalty replaces the computed amount — when nil the
// freshly computed penalty always applies, even under a status override.
type CorrectRecordRequest struct {
	StaffID         string           `json:"staff_id"`
	NewClockIn      string           `json:"new_clock_in"` // RFC3339
	OverrideStatus  *string          `json:"override_status,omitempty"`
	OverridePenalty *decimal.Decimal `json:"override_penalty,omitempty"`
}

func (r *CorrectRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.NewClockIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "new_clock_in",
			Message: "new_clock_in must be an RFC3339 timestamp",
		})
	}

	if r.OverrideStatus != nil && !Status(strings.ToLower(*r.OverrideStatus)).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "override_status",
			Message: "override_status must be one of: present, late, absent",
		})
	}

	if r.OverridePenalty != nil && r.OverridePenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "override_penalty",
			Message: "override_penalty must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID            string          `json:"id"`
	StaffID       string          `json:"staff_id"`
	StaffName     string          `json:"staff_name,omitempty"`
	Date          string          `json:"date"`
	ClockInTime   string          `json:"clock_in_time"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	Status        string          `json:"status"`
	PenaltyAmount decimal.Decimal `json:"penalty_amount"`
	SelfieRef     *string         `json:"selfie_ref,omitempty"`
	DistanceM     *float64        `json:"distance_meters,omitempty"`
}

type RecordFilter struct {
	StaffID   *string `json:"staff_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, absent",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MapRecordToResponse converts a Record entity to RecordResponse.
func MapRecordToResponse(rec Record) RecordResponse {
	var staffName string
	if rec.StaffName != nil {
		staffName = *rec.StaffName
	}

	return RecordResponse{
		ID:            rec.ID,
		StaffID:       rec.StaffID,
		StaffName:     staffName,
		Date:          rec.Date.Format("2006-01-02"),
		ClockInTime:   rec.ClockIn.Format(time.RFC3339),
		Latitude:      rec.Latitude,
		Longitude:     rec.Longitude,
		Status:        string(rec.Status),
		PenaltyAmount: rec.PenaltyAmount,
		SelfieRef:     rec.SelfieRef,
	}
}
