package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	taskService task.TaskService
}

// GetMe implements staff.StaffService.
func (s *StaffServiceImpl) GetMe(ctx context.Context) (staff.MemberResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return staff.MemberResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, identity.StaffID)
	if err != nil {
		return staff.MemberResponse{}, err
	}

	return staff.MapMemberToResponse(member), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context) ([]staff.MemberResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.Role.CanManage() {
		return nil, staff.ErrPermissionDenied
	}

	members, err := s.StaffRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, staff.MapMemberToResponse(member))
	}

	return responses, nil
}

// UpdateStation implements staff.StaffService. A station change reroutes the
// member's tasks, so the day's instances are reconciled right after.
func (s *StaffServiceImpl) UpdateStation(ctx context.Context, req *staff.UpdateStationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !identity.Role.CanManage() {
		return staff.ErrPermissionDenied
	}

	if err := s.StaffRepository.UpdateStation(ctx, req.ID, req.Station); err != nil {
		return err
	}

	if _, err := s.taskService.Reconcile(ctx, time.Now()); err != nil {
		return fmt.Errorf("failed to reconcile tasks after station change: %w", err)
	}

	return nil
}

func NewStaffService(
	staffRepo staff.StaffRepository,
	taskService task.TaskService,
) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		taskService:     taskService,
	}
}
