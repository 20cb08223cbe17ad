package payroll

import "context"

type PayrollRepository interface {
	// GetByStaffAndPeriod returns ErrRecordNotFound when no payment row
	// exists for the period
	GetByStaffAndPeriod(ctx context.Context, staffID string, year int, month int) (Record, error)

	// Upsert creates or overwrites the period's record with the frozen
	// breakdown and payment fields
	Upsert(ctx context.Context, record *Record) error

	ListByPeriod(ctx context.Context, year int, month int) ([]Record, error)
}
