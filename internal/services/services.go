package services

import (
	"context"
	"errors"

	"github.com/dfanso/task-pa/internal/models"
)

var (
	ErrUnauthorized     = errors.New("not the configured owner")
	ErrEmptyDescription = errors.New("task description is empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNothingPending   = errors.New("no pending tasks")
	ErrStoreUnavailable = errors.New("task store unavailable")
)

// Authorizer gates every task operation to the single configured owner.
type Authorizer interface {
	IsAuthorized(principalID string) bool
}

type TaskService interface {
	// AddTask persists a new pending task for the principal.
	//
	// An invalid or empty priority falls back to PriorityMedium.
	//
	// It returns ErrUnauthorized if the principal is not the owner
	// or ErrEmptyDescription if the description is blank. Nothing
	// is written in either case.
	AddTask(ctx context.Context, principalID, description string, priority models.Priority) (*models.Task, error)

	// ViewToday builds the priority-sorted daily view of the
	// principal's tasks created today.
	//
	// A day with no tasks yields an empty view, not an error.
	ViewToday(ctx context.Context, principalID string) (*DailyView, error)

	// ListPendingForSelection returns the principal's incomplete tasks
	// shaped for a selection menu, descriptions truncated for display.
	//
	// It returns ErrNothingPending if every task is done.
	ListPendingForSelection(ctx context.Context, principalID string) ([]PendingOption, error)

	// CompleteTask marks the task completed. Completing an already
	// completed task succeeds; only a missing ID is an error.
	//
	// It returns ErrTaskNotFound if no task has the given ID.
	CompleteTask(ctx context.Context, principalID, taskID string) error
}

type UserService interface {
	// RegisterUser records the acting user, refreshing the
	// username on repeat calls.
	RegisterUser(ctx context.Context, discordID, username string) (*models.User, error)
}

type PendingOption struct {
	ID          string
	Description string
	Priority    models.Priority
}
