package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status TaskStatus
		valid  bool
	}{
		{TaskStatusPending, true},
		{TaskStatusInProcess, true},
		{TaskStatusCompleted, true},
		{TaskStatus("DONE"), false},
		{TaskStatus(""), false},
		{TaskStatus("pending"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.status.IsValid(), "status %q", tt.status)
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(ownerID, "Write report", "quarterly numbers", TaskStatusPending)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, "quarterly numbers", task.Description)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("description defaults to empty", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(ownerID, "No description", "", TaskStatusPending)
		require.NoError(t, err)
		assert.Equal(t, "", task.Description)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(ownerID, "", "", TaskStatusPending)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(ownerID, "Title", "", TaskStatus("WONTFIX"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("nil owner rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(uuid.Nil, "Title", "", TaskStatusPending)
		assert.ErrorIs(t, err, ErrEmptyUserID)
	})
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	newTask := func(t *testing.T) *Task {
		t.Helper()
		task, err := NewTask(uuid.New(), "Original", "original description", TaskStatusPending)
		require.NoError(t, err)
		return task
	}

	t.Run("status only changes status", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		status := TaskStatusCompleted
		require.NoError(t, task.Apply(TaskUpdate{Status: &status}))

		assert.Equal(t, TaskStatusCompleted, task.Status)
		assert.Equal(t, "Original", task.Title)
		assert.Equal(t, "original description", task.Description)
	})

	t.Run("nil fields preserve prior values", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		require.NoError(t, task.Apply(TaskUpdate{}))

		assert.Equal(t, "Original", task.Title)
		assert.Equal(t, "original description", task.Description)
		assert.Equal(t, TaskStatusPending, task.Status)
	})

	t.Run("all fields change together", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		title := "Updated"
		description := ""
		status := TaskStatusInProcess
		require.NoError(t, task.Apply(TaskUpdate{
			Title:       &title,
			Description: &description,
			Status:      &status,
		}))

		assert.Equal(t, "Updated", task.Title)
		assert.Equal(t, "", task.Description)
		assert.Equal(t, TaskStatusInProcess, task.Status)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		title := ""
		assert.ErrorIs(t, task.Apply(TaskUpdate{Title: &title}), ErrEmptyTitle)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		t.Parallel()

		task := newTask(t)
		status := TaskStatus("BOGUS")
		assert.ErrorIs(t, task.Apply(TaskUpdate{Status: &status}), ErrInvalidStatus)
	})
}
