package service

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/taskforge-api/internal/domain"
	"github.com/taskforge/taskforge-api/internal/store"
)

// memoryTaskStore is an in-memory store.TaskStore for tests. Like the real
// store, every lookup filters by owner, so a foreign task is
// indistinguishable from a missing one.
type memoryTaskStore struct {
	mu    sync.Mutex
	tasks []*domain.Task // insertion order; listing reverses it
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{}
}

func (s *memoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *task
	s.tasks = append(s.tasks, &clone)
	return nil
}

func (s *memoryTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := []*domain.Task{}
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].UserID == userID {
			clone := *s.tasks[i]
			owned = append(owned, &clone)
		}
	}
	return owned, nil
}

func (s *memoryTaskStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id && task.UserID == userID {
			clone := *task
			return &clone, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

func (s *memoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == task.ID && existing.UserID == task.UserID {
			clone := *task
			s.tasks[i] = &clone
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (s *memoryTaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, task := range s.tasks {
		if task.ID == id && task.UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

var _ store.TaskStore = (*memoryTaskStore)(nil)

func newTestTaskService() *TaskService {
	return NewTaskService(newMemoryTaskStore(), slog.Default())
}

func TestTaskServiceCreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, "T", "", domain.TaskStatusPending)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID, owner)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, owner, got.UserID)
}

func TestTaskServiceOwnershipEnforcement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	ownerA := uuid.New()
	ownerB := uuid.New()

	task, err := svc.Create(ctx, ownerA, "A's task", "", domain.TaskStatusPending)
	require.NoError(t, err)

	// B must see NotFound for A's task on every operation, never the task.
	_, err = svc.Get(ctx, task.ID, ownerB)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	title := "hijacked"
	_, err = svc.Update(ctx, task.ID, ownerB, domain.TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.Delete(ctx, task.ID, ownerB)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// A's task is still intact.
	got, err := svc.Get(ctx, task.ID, ownerA)
	require.NoError(t, err)
	assert.Equal(t, "A's task", got.Title)
}

func TestTaskServicePartialUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	owner := uuid.New()

	task, err := svc.Create(ctx, owner, "Original", "keep me", domain.TaskStatusPending)
	require.NoError(t, err)

	status := domain.TaskStatusCompleted
	updated, err := svc.Update(ctx, task.ID, owner, domain.TaskUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)

	// The change persisted, not just the returned copy.
	got, err := svc.Get(ctx, task.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)
}

func TestTaskServiceListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	owner := uuid.New()

	a, err := svc.Create(ctx, owner, "A", "", domain.TaskStatusPending)
	require.NoError(t, err)
	b, err := svc.Create(ctx, owner, "B", "", domain.TaskStatusPending)
	require.NoError(t, err)
	c, err := svc.Create(ctx, owner, "C", "", domain.TaskStatusPending)
	require.NoError(t, err)

	tasks, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, c.ID, tasks[0].ID)
	assert.Equal(t, b.ID, tasks[1].ID)
	assert.Equal(t, a.ID, tasks[2].ID)
}

func TestTaskServiceListEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestTaskService()

	tasks, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	owner := uuid.New()

	task, err := svc.Create(ctx, owner, "doomed", "", domain.TaskStatusPending)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID, owner))

	_, err = svc.Get(ctx, task.ID, owner)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// Deleting again reports NotFound as well.
	assert.ErrorIs(t, svc.Delete(ctx, task.ID, owner), store.ErrTaskNotFound)
}

func TestTaskServiceCreateValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestTaskService()
	owner := uuid.New()

	_, err := svc.Create(ctx, owner, "", "", domain.TaskStatusPending)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = svc.Create(ctx, owner, "Title", "", domain.TaskStatus("NOPE"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
