package model

// TaskStatusPending is the status assigned to new tasks when the caller
// does not supply one.
const TaskStatusPending = "pending"

// Task is a work item within a project. Tasks nest through ParentID:
// tasks sharing the same (ProjectID, ParentID) pair form a sibling group,
// ordered by OrderIndex. Deleting a project or a parent task cascades to
// every descendant.
type Task struct {
	ID          string  `json:"id" db:"id"`
	ProjectID   string  `json:"project_id" db:"project_id"`
	ParentID    *string `json:"parent_id,omitempty" db:"parent_id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description,omitempty" db:"description"`
	Status      string  `json:"status" db:"status"`
	Priority    int     `json:"priority" db:"priority"`
	StartDate   *string `json:"start_date,omitempty" db:"start_date"`
	EndDate     *string `json:"end_date,omitempty" db:"end_date"`
	Progress    int     `json:"progress" db:"progress"`
	OrderIndex  int     `json:"order_index" db:"order_index"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
}
