package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle label of a task. It is a plain label, not a
// workflow: any status may move to any other via update.
type TaskStatus string

// Valid task statuses
const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusInProcess TaskStatus = "IN_PROCESS"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProcess, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a single task owned by exactly one user.
// UserID is the owner; every read or mutation of a task must verify the
// requester's identity against it.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskUpdate carries a partial update to a task. Nil fields preserve the
// prior value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// NewTask creates a new Task owned by userID. The description defaults to
// empty when not provided, so it is never left undefined in storage.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Apply merges a partial update into the task, leaving omitted fields
// unchanged. Returns an error if the merged task fails validation.
func (t *Task) Apply(update TaskUpdate) error {
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	return t.Validate()
}
