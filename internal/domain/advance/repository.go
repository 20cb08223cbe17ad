package advance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	ListByStaff(ctx context.Context, staffID string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SumApprovedInMonth totals approved requests created within the month
	// for one staff member
	SumApprovedInMonth(ctx context.Context, staffID string, year int, month time.Month) (decimal.Decimal, error)
}
