package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dfanso/task-pa/internal/models"
)

type postgresStore struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewPostgresStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) Store {
	return &postgresStore{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *postgresStore) FindTasks(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	const selectTasksByUserQuery = `
SELECT id,
       description,
       priority,
       created_at,
       completed
FROM tasks
WHERE user_id = $1
ORDER BY created_at
`
	const selectTasksByUserAndCompletedQuery = `
SELECT id,
       description,
       priority,
       created_at,
       completed
FROM tasks
WHERE user_id = $1 AND
      completed = $2
ORDER BY created_at
`

	args := []any{filter.OwnerID}
	query := selectTasksByUserQuery
	if filter.Completed != nil {
		query = selectTasksByUserAndCompletedQuery
		args = append(args, *filter.Completed)
	}

	rows, err := s.pgPool.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", filter.OwnerID).
			Msg("failed to select tasks")
		return nil, classifyError(err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{UserID: filter.OwnerID}
		var priority string
		err = rows.Scan(
			&task.ID,
			&task.Description,
			&priority,
			&task.CreatedAt,
			&task.Completed,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		task.Priority = models.Priority(priority)
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", filter.OwnerID).
		Msg("selected tasks")

	return tasks, nil
}

func (s *postgresStore) InsertTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}

	task = &models.Task{
		ID:          taskUUID.String(),
		UserID:      task.UserID,
		Description: task.Description,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		Completed:   false,
	}

	const insertTaskQuery = `
INSERT INTO tasks (id,
                   user_id,
                   description,
                   priority,
                   created_at,
                   completed)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.UserID,
		task.Description,
		string(task.Priority),
		task.CreatedAt,
		task.Completed,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, classifyError(err)
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	return task, nil
}

func (s *postgresStore) MarkTaskCompleted(ctx context.Context, id string) error {
	const updateTaskCompletedQuery = `
UPDATE tasks
SET completed = TRUE
WHERE id = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		updateTaskCompletedQuery,
		id,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to mark task completed")
		return classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Str("task_id", id).
			Msg("task not found")
		return ErrNotFound
	}
	s.logger.Debug().
		Str("task_id", id).
		Msg("marked task completed")

	return nil
}

func (s *postgresStore) UpsertUser(ctx context.Context, user *models.User) error {
	const upsertUserQuery = `
INSERT INTO users (discord_id,
                   username,
                   updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (discord_id) DO UPDATE
SET username = EXCLUDED.username,
    updated_at = EXCLUDED.updated_at
`
	_, err := s.pgPool.Exec(
		ctx,
		upsertUserQuery,
		user.DiscordID,
		user.Username,
		user.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("discord_id", user.DiscordID).
			Msg("failed to upsert user")
		return classifyError(err)
	}
	s.logger.Debug().
		Str("discord_id", user.DiscordID).
		Msg("upserted user")

	return nil
}

// classifyError maps connection-class postgres failures to ErrUnavailable
// so callers can surface them as transient instead of crashing the flow.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return ErrUnavailable
	}
	return err
}
