package task

import (
	"context"
	"time"
)

// TaskService manages templates and keeps daily instances reconciled
// against them.
type TaskService interface {
	CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string) error

	// Reconcile closes the gap between templates and the day's instances.
	// Safe to call from any trigger; a second run with unchanged inputs
	// reports zero changes.
	Reconcile(ctx context.Context, day time.Time) (ReconcileResponse, error)

	GetMyTasks(ctx context.Context, day time.Time) ([]InstanceResponse, error)
	CompleteTask(ctx context.Context, instanceID string, req *CompleteInstanceRequest) error
}
