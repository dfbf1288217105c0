package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

const taskColumns = `id,
       title,
       description,
       status,
       priority,
       due_date,
       created_at,
       updated_at`

type taskServiceImpl struct {
	logger zerolog.Logger
	db     Querier
	now    func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	db Querier,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if params.Status == "" {
		params.Status = models.StatusPending
	}
	if params.Priority == "" {
		params.Priority = models.PriorityMedium
	}
	if params.DueDate != nil && *params.DueDate == "" {
		params.DueDate = nil
	}

	now := s.now()

	const insertTaskQuery = `
INSERT INTO tasks (title,
                   description,
                   status,
                   priority,
                   due_date,
                   created_at,
                   updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`
	result, err := s.db.ExecContext(
		ctx,
		insertTaskQuery,
		params.Title,
		params.Description,
		params.Status,
		params.Priority,
		params.DueDate,
		now,
		now,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, fmt.Errorf("insert task: %w", err)
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to get inserted task id")
		return nil, fmt.Errorf("insert task: %w", err)
	}
	s.logger.Debug().
		Int64("task_id", taskID).
		Msg("inserted task")

	task, err := s.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
ORDER BY created_at DESC, id DESC
`
	tasks, err := s.queryTasks(ctx, selectTasksQuery)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	const selectTaskByIDQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ?
`
	task := new(models.Task)
	err := s.db.QueryRowContext(ctx, selectTaskByIDQuery, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Info().
				Int64("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to select task")
		return nil, fmt.Errorf("select task: %w", err)
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("selected task")

	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	// Empty strings would leave a row without a title, status or priority.
	if patch.Title != nil && *patch.Title == "" {
		patch.Title = nil
	}
	if patch.Status != nil && *patch.Status == "" {
		patch.Status = nil
	}
	if patch.Priority != nil && *patch.Priority == "" {
		patch.Priority = nil
	}
	if patch.DueDate.Set && !patch.DueDate.Null && patch.DueDate.Value == "" {
		patch.DueDate = models.NullString()
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = COALESCE(?, title),
    description = CASE WHEN ? THEN ? ELSE description END,
    status = COALESCE(?, status),
    priority = COALESCE(?, priority),
    due_date = CASE WHEN ? THEN ? ELSE due_date END,
    updated_at = ?
WHERE id = ?
`
	result, err := s.db.ExecContext(
		ctx,
		updateTaskQuery,
		patch.Title,
		patch.Description.Set,
		patch.Description.Value,
		patch.Status,
		patch.Priority,
		patch.DueDate.Set,
		patch.DueDate.Ptr(),
		s.now(),
		id,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return nil, fmt.Errorf("update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to get affected rows")
		return nil, fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		s.logger.Info().
			Int64("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	s.logger.Debug().
		Int64("task_id", id).
		Msg("updated task")

	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ?
`
	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to get affected rows")
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		s.logger.Info().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) GetTasksByStatus(ctx context.Context, status string) ([]*models.Task, error) {
	const selectTasksByStatusQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE status = ?
ORDER BY created_at DESC, id DESC
`
	tasks, err := s.queryTasks(ctx, selectTasksByStatusQuery, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Str("status", status).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) CountTasks(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to count tasks")
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

func (s *taskServiceImpl) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := new(models.Task)
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	return tasks, nil
}
