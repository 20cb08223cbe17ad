package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records a geolocated clock-in for the authenticated staff member
	ClockIn(ctx context.Context, req ClockInRequest) (RecordResponse, error)

	// CorrectRecord re-derives an existing record from a corrected clock-in
	// time and reconciles the points ledger (manager/supervisor only)
	CorrectRecord(ctx context.Context, req CorrectRecordRequest) (RecordResponse, error)

	// GetMyRecords lists the authenticated staff member's records
	GetMyRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// ListRecords lists records across the roster (manager/supervisor only)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
}
