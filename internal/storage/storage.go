package storage

import (
	"context"
	"errors"

	"github.com/dfanso/task-pa/internal/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnavailable = errors.New("storage unavailable")
)

type TaskFilter struct {
	OwnerID string
	// Completed narrows the result to completed or pending
	// tasks when set; nil returns both.
	Completed *bool
}

type Store interface {
	// FindTasks returns the owner's tasks ordered by creation time.
	// An empty result is not an error.
	FindTasks(ctx context.Context, filter TaskFilter) ([]*models.Task, error)

	// InsertTask persists the task, assigns its ID and returns it.
	InsertTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// MarkTaskCompleted sets completed on the task with the given ID.
	// Completion is monotonic; there is no way back to pending.
	//
	// It returns ErrNotFound if no task has that ID.
	MarkTaskCompleted(ctx context.Context, id string) error

	// UpsertUser inserts the user or refreshes an existing record.
	UpsertUser(ctx context.Context, user *models.User) error
}
