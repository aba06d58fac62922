package store

import (
	"context"
	"fmt"

	"github.com/example/todowbs/internal/model"
)

// StorageError wraps any failure coming out of the persistence layer:
// constraint violations, I/O errors, malformed queries. Every store
// operation either fully succeeds or returns one of these; there is no
// partial-success state.
type StorageError struct {
	Op  string // short description of the failed operation
	Err error  // underlying database error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// Store defines the persistence interface for projects, tasks, and daily
// todos. Lookups treat absence as a valid non-error result (nil record or
// empty list) and blanket updates are no-ops on unknown ids; only
// ToggleTodo and AddTaskToTodo, which must read existing state to proceed,
// report a missing target as an error.
type Store interface {
	// === Projects ===

	CreateProject(ctx context.Context, p model.Project) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	UpdateProject(ctx context.Context, p model.Project) error
	DeleteProject(ctx context.Context, id string) error

	// === Tasks ===

	CreateTask(ctx context.Context, t model.Task) (*model.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
	UpdateTaskDates(ctx context.Context, id string, startDate, endDate *string) error
	DeleteTask(ctx context.Context, id string) error

	// === Daily todos ===

	CreateDailyTodo(ctx context.Context, todo model.DailyTodo) (*model.DailyTodo, error)
	ListTodosByDate(ctx context.Context, date string) ([]model.DailyTodoWithTask, error)
	ToggleTodo(ctx context.Context, id string) (bool, error)
	UpdateTodoMemo(ctx context.Context, id string, memo *string) error
	DeleteTodo(ctx context.Context, id string) error
	AddTaskToTodo(ctx context.Context, taskID, date string) (*model.DailyTodo, error)
}
