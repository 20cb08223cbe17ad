package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	// templates
	CreateTemplate(ctx context.Context, template *Template) error
	ListTemplates(ctx context.Context) ([]Template, error)
	DeleteTemplate(ctx context.Context, id string) error

	// instances
	ListInstancesByDay(ctx context.Context, day time.Time) ([]Instance, error)
	ListInstancesByStaffAndDay(ctx context.Context, staffID string, day time.Time) ([]Instance, error)
	InsertInstances(ctx context.Context, instances []Instance) error
	DeleteInstances(ctx context.Context, ids []string) error
	// CompleteInstance marks the instance completed only when it is assigned
	// to staffID; any other caller gets ErrInstanceNotFound
	CompleteInstance(ctx context.Context, id string, staffID string, proofRef *string) error
}
