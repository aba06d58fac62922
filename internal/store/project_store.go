package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/todowbs/internal/model"
)

// CreateProject inserts a new project and returns the stored record with
// its generated id and creation timestamp filled in.
func (s *SQLiteStore) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New().String()
	p.CreatedAt = timestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, description, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.StartDate, p.EndDate, p.CreatedAt,
	)
	if err != nil {
		return nil, storageError("creating project", err)
	}
	return &p, nil
}

// ListProjects returns all projects, newest first.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []model.Project
	err := s.db.SelectContext(ctx, &projects, `
		SELECT id, name, description, start_date, end_date, created_at
		FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, storageError("querying projects", err)
	}
	return projects, nil
}

// GetProject looks up a project by id. A missing project is not an error;
// the result is simply nil.
func (s *SQLiteStore) GetProject(ctx context.Context, id string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p model.Project
	err := s.db.GetContext(ctx, &p, `
		SELECT id, name, description, start_date, end_date, created_at
		FROM projects WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(fmt.Sprintf("getting project %s", id), err)
	}
	return &p, nil
}

// UpdateProject overwrites the name, description, and date window of an
// existing project. Unknown ids are a no-op, not an error.
func (s *SQLiteStore) UpdateProject(ctx context.Context, p model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, description = ?, start_date = ?, end_date = ?
		WHERE id = ?`,
		p.Name, p.Description, p.StartDate, p.EndDate, p.ID,
	)
	if err != nil {
		return storageError(fmt.Sprintf("updating project %s", p.ID), err)
	}
	return nil
}

// DeleteProject removes a project. Its tasks at every depth are deleted by
// cascade, and any daily todo pointing at one of those tasks keeps its row
// with the task reference cleared.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return storageError(fmt.Sprintf("deleting project %s", id), err)
	}
	return nil
}
