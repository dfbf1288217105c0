package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskService interface {
	// CreateTask inserts a task and returns the stored row.
	//
	// Missing optional fields get their defaults: an empty description,
	// StatusPending, PriorityMedium and no due date.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTasks returns every task, newest first. An empty store
	// yields an empty slice.
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// GetTaskByID returns ErrTaskNotFound if no task has the given ID.
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)

	// UpdateTask applies the patch over the stored row, refreshes
	// updated_at and returns the result.
	//
	// It returns ErrTaskNotFound if no task has the given ID.
	UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)

	// DeleteTask removes the task permanently.
	//
	// It returns ErrTaskNotFound if nothing was deleted.
	DeleteTask(ctx context.Context, id int64) error

	// GetTasksByStatus filters by exact status, newest first.
	// The status is not validated.
	GetTasksByStatus(ctx context.Context, status string) ([]*models.Task, error)

	CountTasks(ctx context.Context) (int, error)
}

type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *string
}

// Querier is the subset of *sql.DB the services rely on.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
