package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// one-record-per-(staff, day) invariant is enforced by a unique index, so a
// racing Create loses cleanly with ErrDuplicateRecord instead of relying on
// check-then-insert.
type AttendanceRepository interface {
	// Create inserts a new record; returns ErrDuplicateRecord when a record
	// for (staff_id, date) already exists
	Create(ctx context.Context, record Record) (Record, error)

	// GetByStaffAndDate retrieves the record for a staff member on a calendar day
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (Record, error)

	// Update rewrites status/penalty/clock-in of an existing record. The
	// expectedUpdatedAt guard makes concurrent corrections lose with
	// ErrRecordModified instead of silently overwriting each other.
	Update(ctx context.Context, record Record, expectedUpdatedAt time.Time) (Record, error)

	// List retrieves records matching the filter, newest first
	List(ctx context.Context, filter RecordFilter) ([]Record, error)

	// MonthlySummary counts days worked and sums penalties for one month
	MonthlySummary(ctx context.Context, staffID string, year int, month time.Month) (MonthlySummary, error)
}
