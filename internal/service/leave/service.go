package leave

import (
	"context"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/leave"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req *leave.SubmitLeaveRequest) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	application := leave.Application{
		StaffID:   identity.StaffID,
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	if err := l.LeaveRepository.Create(ctx, &application); err != nil {
		return leave.ApplicationResponse{}, err
	}

	return leave.MapApplicationToResponse(application), nil
}

// GetMyApplications implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyApplications(ctx context.Context) ([]leave.ApplicationResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := l.LeaveRepository.ListByStaff(ctx, identity.StaffID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, leave.MapApplicationToResponse(application))
	}

	return responses, nil
}

// ListPending implements leave.LeaveService.
func (l *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.ApplicationResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.CanManage() {
		return nil, leave.ErrPermissionDenied
	}

	applications, err := l.LeaveRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, leave.MapApplicationToResponse(application))
	}

	return responses, nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, id string, req *leave.DecideLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !identity.Role.CanManage() {
		return leave.ErrPermissionDenied
	}

	application, err := l.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if application.Status != leave.StatusPending {
		return leave.ErrAlreadyDecided
	}

	return l.LeaveRepository.UpdateStatus(ctx, id, leave.Status(req.Status))
}

func NewLeaveService(repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRepository: repo}
}
