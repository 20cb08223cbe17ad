package payroll

import "context"

// PayrollService computes monthly breakdowns and records payments.
type PayrollService interface {
	// GetBreakdown computes the breakdown on the fly; when a payment row
	// already exists its status, method, proof, and paid-at are merged in,
	// and a paid row's stored amounts replace the computed ones
	GetBreakdown(ctx context.Context, staffID string, year int, month int) (BreakdownResponse, error)

	// ListBreakdowns computes breakdowns for the whole roster
	ListBreakdowns(ctx context.Context, year int, month int) ([]BreakdownResponse, error)

	// MarkPaid uploads the proof first, then persists the record with the
	// breakdown frozen at this moment; a failed upload aborts the write
	MarkPaid(ctx context.Context, staffID string, year int, month int, req *MarkPaidRequest) (BreakdownResponse, error)
}
