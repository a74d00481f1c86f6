package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskforge/taskforge-api/internal/domain"
	"github.com/taskforge/taskforge-api/internal/platform/logger"
	"github.com/taskforge/taskforge-api/internal/store"
)

// TaskService enforces task ownership and orchestrates TaskStore calls.
// The owner is always the authenticated identity, never client input; a
// task that exists but belongs to someone else surfaces as
// store.ErrTaskNotFound, so callers cannot probe for other users' tasks.
type TaskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// Create creates a new task owned by ownerID. An absent description is
// stored as the empty string so it is never undefined in storage.
func (s *TaskService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	title, description string,
	status domain.TaskStatus,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, description, status)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns all tasks owned by ownerID, newest first.
func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	return s.taskStore.ListByUser(ctx, ownerID)
}

// Get returns the task with the given ID if it is owned by ownerID.
// Returns store.ErrTaskNotFound if the task is missing or not owned.
func (s *TaskService) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id, ownerID)
}

// Update applies a partial update to the task with the given ID, after the
// same existence and ownership check as Get. Omitted fields keep their
// prior values.
//
// The check and the write are two statements, not one transaction: the task
// can be deleted concurrently between them, in which case the write reports
// store.ErrTaskNotFound. Known limitation, acceptable for this system's
// guarantees.
func (s *TaskService) Update(
	ctx context.Context,
	id, ownerID uuid.UUID,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := task.Apply(update); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	log.Debug("task updated",
		slog.String("task_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return task, nil
}

// Delete removes the task with the given ID permanently, after the same
// existence and ownership check as Get. Subject to the same
// check-then-write window as Update.
func (s *TaskService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := s.taskStore.GetByID(ctx, id, ownerID); err != nil {
		return err
	}

	return s.taskStore.Delete(ctx, id, ownerID)
}
