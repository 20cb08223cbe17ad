package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, application *Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	ListByStaff(ctx context.Context, staffID string) ([]Application, error)
	ListPending(ctx context.Context) ([]Application, error)

	// ListApprovedOverlappingMonth returns approved applications whose span
	// touches the month, for the given staff member
	ListApprovedOverlappingMonth(ctx context.Context, staffID string, year int, month time.Month) ([]Application, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}
