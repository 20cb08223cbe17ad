package points

import (
	"context"

	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// PointsService maintains the monthly ledger and derives the ranking.
type PointsService interface {
	// AdjustForTransition applies the ledger delta for a status correction;
	// no-op transitions return without touching storage
	AdjustForTransition(ctx context.Context, staffID string, oldStatus, newStatus attendance.Status, month string) error

	// GetRanking returns the sorted monthly ranking with rewards attached
	GetRanking(ctx context.Context, month string) ([]RankingEntryResponse, error)

	// RewardForStaff returns the ranking reward a staff member earned for the
	// month; staff with no ledger row earn zero
	RewardForStaff(ctx context.Context, staffID string, month string) (decimal.Decimal, error)

	// GetMyBalance returns the authenticated staff member's ledger row
	GetMyBalance(ctx context.Context, month string) (BalanceResponse, error)
}
