package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

// CreateTemplate implements task.TaskRepository.
func (t *taskRepository) CreateTemplate(ctx context.Context, template *task.Template) error {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO task_templates (station, title, description, deadline_time, penalty_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		template.Station,
		template.Title,
		template.Description,
		template.DeadlineTime,
		template.PenaltyAmount,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create task template: %w", err)
	}

	return nil
}

// ListTemplates implements task.TaskRepository.
func (t *taskRepository) ListTemplates(ctx context.Context) ([]task.Template, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, station, title, description, deadline_time, penalty_amount,
			   created_at, updated_at
		FROM task_templates
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query task templates: %w", err)
	}
	defer rows.Close()

	var templates []task.Template
	for rows.Next() {
		var template task.Template
		err := rows.Scan(
			&template.ID, &template.Station, &template.Title, &template.Description,
			&template.DeadlineTime, &template.PenaltyAmount,
			&template.CreatedAt, &template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task template: %w", err)
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// DeleteTemplate implements task.TaskRepository.
func (t *taskRepository) DeleteTemplate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	query := `DELETE FROM task_templates WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task template: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrTemplateNotFound
	}

	return nil
}

// ListInstancesByDay implements task.TaskRepository.
func (t *taskRepository) ListInstancesByDay(ctx context.Context, day time.Time) ([]task.Instance, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, assigned_to, title, description, is_completed, proof_ref, day, created_at
		FROM task_instances
		WHERE day = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, task.DayKey(day))
	if err != nil {
		return nil, fmt.Errorf("failed to query task instances: %w", err)
	}
	defer rows.Close()

	var instances []task.Instance
	for rows.Next() {
		var instance task.Instance
		err := rows.Scan(
			&instance.ID, &instance.AssignedTo, &instance.Title, &instance.Description,
			&instance.IsCompleted, &instance.ProofRef, &instance.Day, &instance.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task instance: %w", err)
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

// ListInstancesByStaffAndDay implements task.TaskRepository.
func (t *taskRepository) ListInstancesByStaffAndDay(ctx context.Context, staffID string, day time.Time) ([]task.Instance, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, assigned_to, title, description, is_completed, proof_ref, day, created_at
		FROM task_instances
		WHERE assigned_to = $1
		  AND day = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, staffID, task.DayKey(day))
	if err != nil {
		return nil, fmt.Errorf("failed to query task instances: %w", err)
	}
	defer rows.Close()

	var instances []task.Instance
	for rows.Next() {
		var instance task.Instance
		err := rows.Scan(
			&instance.ID, &instance.AssignedTo, &instance.Title, &instance.Description,
			&instance.IsCompleted, &instance.ProofRef, &instance.Day, &instance.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task instance: %w", err)
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

// InsertInstances implements task.TaskRepository. The unique index on
// (assigned_to, title, day) makes concurrent reconcile runs converge; a row
// another run already inserted is skipped.
func (t *taskRepository) InsertInstances(ctx context.Context, instances []task.Instance) error {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO task_instances (assigned_to, title, description, day)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (assigned_to, title, day) DO NOTHING
	`

	for _, instance := range instances {
		_, err := q.Exec(ctx, query,
			instance.AssignedTo,
			instance.Title,
			instance.Description,
			instance.Day,
		)
		if err != nil {
			return fmt.Errorf("failed to insert task instance: %w", err)
		}
	}

	return nil
}

// DeleteInstances implements task.TaskRepository. Completed instances are
// never deleted, even when listed.
func (t *taskRepository) DeleteInstances(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, t.db)

	query := `
		DELETE FROM task_instances
		WHERE id = ANY($1)
		  AND is_completed = FALSE
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to delete task instances: %w", err)
	}

	return nil
}

// CompleteInstance implements task.TaskRepository. The assigned_to filter
// stops a caller from completing someone else's instance.
func (t *taskRepository) CompleteInstance(ctx context.Context, id string, staffID string, proofRef *string) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE task_instances
		SET is_completed = TRUE, proof_ref = $1
		WHERE id = $2
		  AND assigned_to = $3
	`

	commandTag, err := q.Exec(ctx, query, proofRef, id, staffID)
	if err != nil {
		return fmt.Errorf("failed to complete task instance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrInstanceNotFound
	}

	return nil
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}
