package task

import (
	"context"
	"fmt"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
	"github.com/kedaihq/staffops-backend-go/internal/repository/postgresql"
	"github.com/kedaihq/staffops-backend-go/internal/service/file"
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	staff.StaffRepository
	fileService file.FileService
}

// CreateTemplate implements task.TaskService. The day's instances are
// reconciled right after so the new template shows up immediately.
func (t *TaskServiceImpl) CreateTemplate(ctx context.Context, req *task.CreateTemplateRequest) (task.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TemplateResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return task.TemplateResponse{}, err
	}
	if !identity.Role.CanManage() {
		return task.TemplateResponse{}, task.ErrPermissionDenied
	}

	template := task.Template{
		Station:       req.Station,
		Title:         req.Title,
		Description:   req.Description,
		DeadlineTime:  req.DeadlineTime,
		PenaltyAmount: req.PenaltyAmount,
	}

	if err := t.TaskRepository.CreateTemplate(ctx, &template); err != nil {
		return task.TemplateResponse{}, err
	}

	if _, err := t.Reconcile(ctx, time.Now()); err != nil {
		return task.TemplateResponse{}, fmt.Errorf("failed to reconcile after template create: %w", err)
	}

	return task.MapTemplateToResponse(template), nil
}

// ListTemplates implements task.TaskService.
func (t *TaskServiceImpl) ListTemplates(ctx context.Context) ([]task.TemplateResponse, error) {
	templates, err := t.TaskRepository.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]task.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		responses = append(responses, task.MapTemplateToResponse(template))
	}

	return responses, nil
}

// DeleteTemplate implements task.TaskService. Reconciling afterwards removes
// the template's incomplete instances; completed ones stay.
func (t *TaskServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if !identity.Role.CanManage() {
		return task.ErrPermissionDenied
	}

	if err := t.TaskRepository.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	if _, err := t.Reconcile(ctx, time.Now()); err != nil {
		return fmt.Errorf("failed to reconcile after template delete: %w", err)
	}

	return nil
}

// Reconcile implements task.TaskService. All decisions are keyed on the
// stable (staff, title, day) identity, so concurrent runs converge on the
// same instance set.
func (t *TaskServiceImpl) Reconcile(ctx context.Context, day time.Time) (task.ReconcileResponse, error) {
	templates, err := t.TaskRepository.ListTemplates(ctx)
	if err != nil {
		return task.ReconcileResponse{}, err
	}

	roster, err := t.StaffRepository.List(ctx)
	if err != nil {
		return task.ReconcileResponse{}, err
	}

	existing, err := t.TaskRepository.ListInstancesByDay(ctx, day)
	if err != nil {
		return task.ReconcileResponse{}, err
	}

	plan := task.BuildPlan(templates, roster, existing, day)
	if plan.IsEmpty() {
		return task.ReconcileResponse{}, nil
	}

	err = postgresql.WithTransaction(ctx, t.db, func(txCtx context.Context) error {
		if err := t.TaskRepository.InsertInstances(txCtx, plan.Inserts); err != nil {
			return err
		}
		return t.TaskRepository.DeleteInstances(txCtx, plan.DeleteIDs)
	})
	if err != nil {
		return task.ReconcileResponse{}, err
	}

	return task.ReconcileResponse{
		Inserted: len(plan.Inserts),
		Deleted:  len(plan.DeleteIDs),
	}, nil
}

// GetMyTasks implements task.TaskService.
func (t *TaskServiceImpl) GetMyTasks(ctx context.Context, day time.Time) ([]task.InstanceResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	instances, err := t.TaskRepository.ListInstancesByStaffAndDay(ctx, identity.StaffID, day)
	if err != nil {
		return nil, err
	}

	responses := make([]task.InstanceResponse, 0, len(instances))
	for _, instance := range instances {
		responses = append(responses, task.MapInstanceToResponse(instance))
	}

	return responses, nil
}

// CompleteTask implements task.TaskService.
func (t *TaskServiceImpl) CompleteTask(ctx context.Context, instanceID string, req *task.CompleteInstanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	var proofRef *string
	if req.File != nil && req.FileHeader != nil {
		uploaded, err := t.fileService.UploadTaskProof(ctx, identity.StaffID, req.File, req.FileHeader.Filename)
		if err != nil {
			return fmt.Errorf("failed to upload task proof: %w", err)
		}
		proofRef = &uploaded
	}

	return t.TaskRepository.CompleteInstance(ctx, instanceID, identity.StaffID, proofRef)
}

func NewTaskService(
	db *database.DB,
	taskRepo task.TaskRepository,
	staffRepo staff.StaffRepository,
	fileService file.FileService,
) task.TaskService {
	return &TaskServiceImpl{
		db:              db,
		TaskRepository:  taskRepo,
		StaffRepository: staffRepo,
		fileService:     fileService,
	}
}
