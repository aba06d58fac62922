package model

// DailyTodo is a to-do entry for a single calendar day. TaskID is a weak
// reference: when the task is deleted the link is cleared but the todo row
// keeps its title and memo, so the day's history stays intact.
type DailyTodo struct {
	ID        string  `json:"id" db:"id"`
	TaskID    *string `json:"task_id,omitempty" db:"task_id"`
	Title     string  `json:"title" db:"title"`
	Date      string  `json:"date" db:"date"`
	Completed bool    `json:"completed" db:"completed"`
	Memo      *string `json:"memo,omitempty" db:"memo"`
	CreatedAt string  `json:"created_at" db:"created_at"`
}

// DailyTodoWithTask is a DailyTodo enriched with the linked task's title and
// its project's name. It is a query-time projection, never stored; both
// extra fields are nil for freestanding todos or once the link is severed.
type DailyTodoWithTask struct {
	DailyTodo
	TaskTitle   *string `json:"task_title,omitempty" db:"task_title"`
	ProjectName *string `json:"project_name,omitempty" db:"project_name"`
}
