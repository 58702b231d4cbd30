package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/models"
	"github.com/dfanso/task-pa/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  storage.Store
	auth   Authorizer
}

func NewTaskService(
	logger zerolog.Logger,
	store storage.Store,
	auth Authorizer,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  store,
		auth:   auth,
	}
}

func (s *taskServiceImpl) AddTask(ctx context.Context, principalID, description string, priority models.Priority) (*models.Task, error) {
	if !s.auth.IsAuthorized(principalID) {
		s.logger.Warn().
			Str("principal_id", principalID).
			Msg("unauthorized add task")
		return nil, ErrUnauthorized
	}

	if strings.TrimSpace(description) == "" {
		s.logger.Warn().Msg("empty task description")
		return nil, ErrEmptyDescription
	}
	if !priority.Valid() {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		UserID:      principalID,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}

	created, err := s.store.InsertTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, mapStoreError(err)
	}
	s.logger.Debug().
		Str("task_id", created.ID).
		Msg("inserted task")

	s.logger.Info().
		Str("task_id", created.ID).
		Str("priority", string(created.Priority)).
		Msg("created task")
	return created, nil
}

func (s *taskServiceImpl) ViewToday(ctx context.Context, principalID string) (*DailyView, error) {
	if !s.auth.IsAuthorized(principalID) {
		s.logger.Warn().
			Str("principal_id", principalID).
			Msg("unauthorized view today")
		return nil, ErrUnauthorized
	}

	// The store query stays owner-only; scoping to the calendar
	// day happens in the view builder.
	tasks, err := s.store.FindTasks(ctx, storage.TaskFilter{OwnerID: principalID})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, mapStoreError(err)
	}

	view := BuildDailyView(tasks, principalID, time.Now())
	s.logger.Info().
		Int("total", view.Total).
		Int("completed", view.CompletedCount).
		Str("salience", string(view.Salience)).
		Msg("built daily view")
	return view, nil
}

func (s *taskServiceImpl) ListPendingForSelection(ctx context.Context, principalID string) ([]PendingOption, error) {
	if !s.auth.IsAuthorized(principalID) {
		s.logger.Warn().
			Str("principal_id", principalID).
			Msg("unauthorized list pending")
		return nil, ErrUnauthorized
	}

	completed := false
	tasks, err := s.store.FindTasks(ctx, storage.TaskFilter{
		OwnerID:   principalID,
		Completed: &completed,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select pending tasks")
		return nil, mapStoreError(err)
	}

	if len(tasks) == 0 {
		s.logger.Info().Msg("no pending tasks")
		return nil, ErrNothingPending
	}

	options := make([]PendingOption, len(tasks))
	for i, task := range tasks {
		options[i] = PendingOption{
			ID:          task.ID,
			Description: task.DisplayDescription(),
			Priority:    task.Priority,
		}
	}

	s.logger.Info().
		Int("count", len(options)).
		Msg("listed pending tasks")
	return options, nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, principalID, taskID string) error {
	if !s.auth.IsAuthorized(principalID) {
		s.logger.Warn().
			Str("principal_id", principalID).
			Msg("unauthorized complete task")
		return ErrUnauthorized
	}

	// A single conditional update; no read-modify-write. Completing
	// an already completed task is a no-op success.
	err := s.store.MarkTaskCompleted(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn().
				Str("task_id", taskID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to complete task")
		return mapStoreError(err)
	}

	s.logger.Info().
		Str("task_id", taskID).
		Msg("completed task")
	return nil
}

func mapStoreError(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return ErrStoreUnavailable
	}
	return err
}
