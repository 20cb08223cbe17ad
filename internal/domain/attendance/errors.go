package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrOutOfRange      = errors.New("you are outside the allowed radius of the shop")
	ErrDuplicateRecord = errors.New("attendance already recorded for today")

	// Correction errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrRecordModified   = errors.New("attendance record was modified by someone else")
	ErrPermissionDenied = errors.New("only managers or supervisors may correct attendance")
)
