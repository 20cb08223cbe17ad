package response

import (
	"errors"
	"net/http"

	"github.com/kedaihq/staffops-backend-go/internal/domain/advance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/leave"
	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/domain/payroll"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutOfRange):
		BadRequest(w, "You are outside the allowed clock-in radius", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already recorded for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRecordModified):
		Conflict(w, "Attendance record was modified by someone else, refetch and retry")
	case errors.Is(err, attendance.ErrPermissionDenied):
		Forbidden(w, "Only managers or supervisors may correct attendance")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Shop config errors
	case errors.Is(err, shopconfig.ErrConfigNotFound):
		NotFound(w, "Shop configuration not found")
	case errors.Is(err, shopconfig.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Task domain errors
	case errors.Is(err, task.ErrTemplateNotFound):
		NotFound(w, "Task template not found")
	case errors.Is(err, task.ErrInstanceNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave application already decided")
	case errors.Is(err, leave.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Advance domain errors
	case errors.Is(err, advance.ErrRequestNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, advance.ErrAlreadyDecided):
		Conflict(w, "Advance request already decided")
	case errors.Is(err, advance.ErrLimitExceeded):
		BadRequest(w, "Advance amount exceeds the configured limit", nil)
	case errors.Is(err, advance.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAlreadyPaid):
		Conflict(w, "Payroll record already marked paid")
	case errors.Is(err, payroll.ErrProofRequired):
		BadRequest(w, "Payment proof is required", nil)
	case errors.Is(err, payroll.ErrPermissionDenied):
		Forbidden(w, "Manager or supervisor role required")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
