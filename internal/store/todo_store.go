package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/example/todowbs/internal/model"
)

// CreateDailyTodo inserts a new todo for its assigned day and returns the
// stored record. New todos always start incomplete.
func (s *SQLiteStore) CreateDailyTodo(ctx context.Context, todo model.DailyTodo) (*model.DailyTodo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = uuid.New().String()
	todo.CreatedAt = timestamp()
	todo.Completed = false

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO daily_todos (id, task_id, title, date, completed, memo, created_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)`,
		todo.ID, todo.TaskID, todo.Title, todo.Date, todo.Memo, todo.CreatedAt,
	)
	if err != nil {
		return nil, storageError("creating daily todo", err)
	}
	return &todo, nil
}

// ListTodosByDate returns the todos for the exact date, each enriched with
// the linked task's title and its project's name when the link is intact.
// Incomplete todos come first, then completed ones, oldest first within
// each group.
func (s *SQLiteStore) ListTodosByDate(ctx context.Context, date string) ([]model.DailyTodoWithTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryxContext(ctx, `
		SELECT dt.id, dt.task_id, dt.title, dt.date, dt.completed, dt.memo, dt.created_at,
			t.title AS task_title, p.name AS project_name
		FROM daily_todos dt
		LEFT JOIN tasks t ON dt.task_id = t.id
		LEFT JOIN projects p ON t.project_id = p.id
		WHERE dt.date = ?
		ORDER BY dt.completed, dt.created_at`, date)
	if err != nil {
		return nil, storageError(fmt.Sprintf("querying todos for %s", date), err)
	}
	defer rows.Close()

	var todos []model.DailyTodoWithTask
	for rows.Next() {
		todo, err := scanTodoWithTask(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(fmt.Sprintf("querying todos for %s", date), err)
	}
	return todos, nil
}

// ToggleTodo flips the completed flag and reports the new value. Unlike the
// blanket updates, a missing todo is an error here: the caller needs the
// resulting state, so there has to be a row to read.
func (s *SQLiteStore) ToggleTodo(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var completed int
	err := s.db.GetContext(ctx, &completed,
		"SELECT completed FROM daily_todos WHERE id = ?", id)
	if err != nil {
		return false, storageError(fmt.Sprintf("toggling todo %s", id), err)
	}

	next := 0
	if completed == 0 {
		next = 1
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE daily_todos SET completed = ? WHERE id = ?", next, id)
	if err != nil {
		return false, storageError(fmt.Sprintf("toggling todo %s", id), err)
	}
	return next == 1, nil
}

// UpdateTodoMemo overwrites only the memo. Unknown ids are a no-op.
func (s *SQLiteStore) UpdateTodoMemo(ctx context.Context, id string, memo *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE daily_todos SET memo = ? WHERE id = ?", memo, id)
	if err != nil {
		return storageError(fmt.Sprintf("updating todo %s memo", id), err)
	}
	return nil
}

// DeleteTodo removes a todo. Nothing references daily todos, so there are
// no cascade effects.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM daily_todos WHERE id = ?", id)
	if err != nil {
		return storageError(fmt.Sprintf("deleting todo %s", id), err)
	}
	return nil
}

// AddTaskToTodo creates a fresh todo for date carrying the task's current
// title and a link back to the task. A missing task is an error. Repeated
// calls with the same task and date create distinct todos.
//
// The title read and the insert are separate lock acquisitions; if the task
// changes or vanishes in between, the todo records the title as it was, or
// the create fails on the broken reference.
func (s *SQLiteStore) AddTaskToTodo(ctx context.Context, taskID, date string) (*model.DailyTodo, error) {
	s.mu.Lock()
	var title string
	err := s.db.GetContext(ctx, &title,
		"SELECT title FROM tasks WHERE id = ?", taskID)
	s.mu.Unlock()
	if err != nil {
		return nil, storageError(fmt.Sprintf("reading title of task %s", taskID), err)
	}

	return s.CreateDailyTodo(ctx, model.DailyTodo{
		TaskID: &taskID,
		Title:  title,
		Date:   date,
	})
}

// scanTodoWithTask scans one row of the date-view join.
func scanTodoWithTask(rows *sqlx.Rows) (model.DailyTodoWithTask, error) {
	var (
		todo         model.DailyTodoWithTask
		completedInt int
	)

	err := rows.Scan(
		&todo.ID, &todo.TaskID, &todo.Title, &todo.Date,
		&completedInt, &todo.Memo, &todo.CreatedAt,
		&todo.TaskTitle, &todo.ProjectName,
	)
	if err != nil {
		return model.DailyTodoWithTask{}, storageError("scanning todo row", err)
	}

	todo.Completed = completedInt != 0
	return todo, nil
}
