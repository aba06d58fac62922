package model

// Project is the top-level container for a work breakdown of tasks.
// Calendar dates are plain YYYY-MM-DD strings; CreatedAt is a local
// "2006-01-02 15:04:05" timestamp. Both are stored as TEXT.
type Project struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	StartDate   *string `json:"start_date,omitempty" db:"start_date"`
	EndDate     *string `json:"end_date,omitempty" db:"end_date"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
}
