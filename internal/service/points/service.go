package points

import (
	"context"
	"fmt"

	"github.com/kedaihq/staffops-backend-go/internal/domain/attendance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/points"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
	"github.com/shopspring/decimal"
)

type PointsServiceImpl struct {
	points.PointsRepository
	shopconfig.ConfigRepository
}

// AdjustForTransition implements points.PointsService.
func (p *PointsServiceImpl) AdjustForTransition(ctx context.Context, staffID string, oldStatus, newStatus attendance.Status, month string) error {
	adjustment := points.ForTransition(oldStatus, newStatus)
	if adjustment.IsZero() {
		return nil
	}

	return p.PointsRepository.Apply(ctx, staffID, month, adjustment)
}

// GetRanking implements points.PointsService.
func (p *PointsServiceImpl) GetRanking(ctx context.Context, month string) ([]points.RankingEntryResponse, error) {
	cfg, err := p.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop config: %w", err)
	}

	rows, err := p.PointsRepository.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	entries := points.ComputeRanking(rows, cfg.RewardForRank)

	responses := make([]points.RankingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, points.MapEntryToResponse(entry))
	}

	return responses, nil
}

// RewardForStaff implements points.PointsService. Staff without a ledger row
// for the month are unranked and earn zero.
func (p *PointsServiceImpl) RewardForStaff(ctx context.Context, staffID string, month string) (decimal.Decimal, error) {
	cfg, err := p.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load shop config: %w", err)
	}

	rows, err := p.PointsRepository.ListByMonth(ctx, month)
	if err != nil {
		return decimal.Zero, err
	}

	for _, entry := range points.ComputeRanking(rows, cfg.RewardForRank) {
		if entry.StaffID == staffID {
			return entry.Reward, nil
		}
	}

	return decimal.Zero, nil
}

// GetMyBalance implements points.PointsService.
func (p *PointsServiceImpl) GetMyBalance(ctx context.Context, month string) (points.BalanceResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return points.BalanceResponse{}, err
	}

	balance, err := p.PointsRepository.GetByStaffAndMonth(ctx, identity.StaffID, month)
	if err != nil {
		return points.BalanceResponse{}, err
	}

	return points.MapBalanceToResponse(balance), nil
}

func NewPointsService(
	pointsRepo points.PointsRepository,
	configRepo shopconfig.ConfigRepository,
) points.PointsService {
	return &PointsServiceImpl{
		PointsRepository: pointsRepo,
		ConfigRepository: configRepo,
	}
}
