package advance

import (
	"context"
	"fmt"

	"github.com/kedaihq/staffops-backend-go/internal/domain/advance"
	"github.com/kedaihq/staffops-backend-go/internal/domain/shopconfig"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type AdvanceServiceImpl struct {
	advance.AdvanceRepository
	shopconfig.ConfigRepository
}

// Submit implements advance.AdvanceService.
func (a *AdvanceServiceImpl) Submit(ctx context.Context, req *advance.SubmitAdvanceRequest) (advance.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.RequestResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return advance.RequestResponse{}, err
	}

	cfg, err := a.ConfigRepository.GetLatest(ctx)
	if err != nil {
		return advance.RequestResponse{}, fmt.Errorf("failed to load shop config: %w", err)
	}

	if cfg.AdvanceLimit.IsPositive() && req.Amount.GreaterThan(cfg.AdvanceLimit) {
		return advance.RequestResponse{}, advance.ErrLimitExceeded
	}

	request := advance.Request{
		StaffID: identity.StaffID,
		Amount:  req.Amount,
		Reason:  req.Reason,
		Status:  advance.StatusPending,
	}

	if err := a.AdvanceRepository.Create(ctx, &request); err != nil {
		return advance.RequestResponse{}, err
	}

	return advance.MapRequestToResponse(request), nil
}

// GetMyRequests implements advance.AdvanceService.
func (a *AdvanceServiceImpl) GetMyRequests(ctx context.Context) ([]advance.RequestResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := a.AdvanceRepository.ListByStaff(ctx, identity.StaffID)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, advance.MapRequestToResponse(request))
	}

	return responses, nil
}

// ListPending implements advance.AdvanceService.
func (a *AdvanceServiceImpl) ListPending(ctx context.Context) ([]advance.RequestResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.CanManage() {
		return nil, advance.ErrPermissionDenied
	}

	requests, err := a.AdvanceRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, advance.MapRequestToResponse(request))
	}

	return responses, nil
}

// Decide implements advance.AdvanceService.
func (a *AdvanceServiceImpl) Decide(ctx context.Context, id string, req *advance.DecideAdvanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !identity.Role.CanManage() {
		return advance.ErrPermissionDenied
	}

	request, err := a.AdvanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != advance.StatusPending {
		return advance.ErrAlreadyDecided
	}

	return a.AdvanceRepository.UpdateStatus(ctx, id, advance.Status(req.Status))
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	configRepo shopconfig.ConfigRepository,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		AdvanceRepository: advanceRepo,
		ConfigRepository:  configRepo,
	}
}
