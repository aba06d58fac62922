package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/todowbs/internal/model"
)

// CreateTask inserts a task at the end of its sibling group and returns the
// stored record. The order index is max+1 among tasks sharing the same
// (project_id, parent_id) pair — a NULL parent is its own group — starting
// at 0 for an empty group. The index read and the insert run under one lock
// acquisition, so concurrent creates cannot allocate the same slot.
func (s *SQLiteStore) CreateTask(ctx context.Context, t model.Task) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.New().String()
	t.CreatedAt = timestamp()
	t.Progress = 0
	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}

	err := s.db.GetContext(ctx, &t.OrderIndex, `
		SELECT COALESCE(MAX(order_index), -1) + 1 FROM tasks
		WHERE project_id = ? AND parent_id IS ?`,
		t.ProjectID, t.ParentID,
	)
	if err != nil {
		return nil, storageError("allocating task order index", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tasks (
			id, project_id, parent_id, title, description, status,
			priority, start_date, end_date, progress, order_index, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.ParentID, t.Title, t.Description, t.Status,
		t.Priority, t.StartDate, t.EndDate, t.Progress, t.OrderIndex, t.CreatedAt,
	)
	if err != nil {
		return nil, storageError("creating task", err)
	}
	return &t, nil
}

// ListTasksByProject returns every task under the project, all depths, as a
// flat list ordered by raw order_index. Hierarchy is reconstructed by the
// caller from parent_id links.
func (s *SQLiteStore) ListTasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []model.Task
	err := s.db.SelectContext(ctx, &tasks, `
		SELECT id, project_id, parent_id, title, description, status,
			priority, start_date, end_date, progress, order_index, created_at
		FROM tasks WHERE project_id = ? ORDER BY order_index`, projectID)
	if err != nil {
		return nil, storageError(fmt.Sprintf("querying tasks for project %s", projectID), err)
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable fields of a task: title, description,
// status, priority, dates, and progress. Identifiers and order_index never
// change. Unknown ids are a no-op.
func (s *SQLiteStore) UpdateTask(ctx context.Context, t model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
			start_date = ?, end_date = ?, progress = ?
		WHERE id = ?`,
		t.Title, t.Description, t.Status, t.Priority,
		t.StartDate, t.EndDate, t.Progress, t.ID,
	)
	if err != nil {
		return storageError(fmt.Sprintf("updating task %s", t.ID), err)
	}
	return nil
}

// UpdateTaskDates touches only the start and end date of a task. Unknown
// ids are a no-op.
func (s *SQLiteStore) UpdateTaskDates(ctx context.Context, id string, startDate, endDate *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?",
		startDate, endDate, id,
	)
	if err != nil {
		return storageError(fmt.Sprintf("updating task %s dates", id), err)
	}
	return nil
}

// DeleteTask removes a task and, by cascade, all of its descendants. Daily
// todos pointing at any deleted task keep their rows with the reference
// cleared. Surviving siblings are not renumbered; order_index gaps are
// fine, relative order is what matters.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return storageError(fmt.Sprintf("deleting task %s", id), err)
	}
	return nil
}
