package points

import "context"

type PointsRepository interface {
	// Apply atomically applies an adjustment to the (staff, month) row,
	// creating the row if it does not exist yet
	Apply(ctx context.Context, staffID string, month string, adj Adjustment) error

	// GetByStaffAndMonth retrieves one ledger row; a missing row is returned
	// as a zeroed balance, not an error
	GetByStaffAndMonth(ctx context.Context, staffID string, month string) (MonthlyPoints, error)

	// ListByMonth retrieves all ledger rows for a month ordered by staff ID
	ListByMonth(ctx context.Context, month string) ([]MonthlyPoints, error)
}
