package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskforge/taskforge-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read and mutation is filtered by the owning user's ID, so a task
// belonging to another user is indistinguishable from a missing one.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser retrieves all tasks owned by userID, ordered by creation
	// time descending (newest first). Returns an empty slice if none exist.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// GetByID retrieves the task with the given ID, provided it is owned by
	// userID. Returns ErrTaskNotFound if the task does not exist or belongs
	// to a different user.
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// Update persists the task's mutable fields (title, description, status).
	// Returns ErrTaskNotFound if the task does not exist or belongs to a
	// different user.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes the task with the given ID, provided it is
	// owned by userID. Returns ErrTaskNotFound if the task does not exist or
	// belongs to a different user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
