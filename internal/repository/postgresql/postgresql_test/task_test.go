package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/task"
	"github.com/kedaihq/staffops-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleanupTaskData(t *testing.T) {
	ctx := context.Background()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE task_instances CASCADE")
	require.NoError(t, err)
	_, err = testDB.Exec(ctx, "TRUNCATE TABLE staff_members CASCADE")
	require.NoError(t, err)
}

func createTaskInstance(t *testing.T, ctx context.Context, staffID string, day time.Time) task.Instance {
	repo := postgresql.NewTaskRepository(testDB)

	err := repo.InsertInstances(ctx, []task.Instance{{
		AssignedTo:  staffID,
		Title:       "Clean the fryer",
		Description: "Drain and scrub",
		Day:         task.DayKey(day),
	}})
	require.NoError(t, err)

	instances, err := repo.ListInstancesByStaffAndDay(ctx, staffID, day)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	return instances[0]
}

func TestTaskRepository_CompleteInstance_OwnerOnly(t *testing.T) {
	defer cleanupTaskData(t)
	cleanupTaskData(t)

	ctx := context.Background()
	owner := createTestStaff(t, ctx)
	intruder := createTestStaff(t, ctx)
	repo := postgresql.NewTaskRepository(testDB)

	day := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	instance := createTaskInstance(t, ctx, owner, day)

	// Someone else's id does not match assigned_to.
	err := repo.CompleteInstance(ctx, instance.ID, intruder, nil)
	assert.ErrorIs(t, err, task.ErrInstanceNotFound)

	after, err := repo.ListInstancesByStaffAndDay(ctx, owner, day)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.False(t, after[0].IsCompleted)

	proofRef := "proofs/task-1.jpg"
	err = repo.CompleteInstance(ctx, instance.ID, owner, &proofRef)
	require.NoError(t, err)

	after, err = repo.ListInstancesByStaffAndDay(ctx, owner, day)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.True(t, after[0].IsCompleted)
	require.NotNil(t, after[0].ProofRef)
	assert.Equal(t, proofRef, *after[0].ProofRef)
}

func TestTaskRepository_CompleteInstance_UnknownID(t *testing.T) {
	defer cleanupTaskData(t)
	cleanupTaskData(t)

	ctx := context.Background()
	staffID := createTestStaff(t, ctx)
	repo := postgresql.NewTaskRepository(testDB)

	err := repo.CompleteInstance(ctx, "00000000-0000-0000-0000-000000000000", staffID, nil)
	assert.ErrorIs(t, err, task.ErrInstanceNotFound)
}
