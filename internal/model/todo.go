package model

import "time"

// Todo is either a standalone to-do item or a subtask owned by a task.
// Both live in the same table: a subtask has Subtask set and TaskID pointing
// at its owner, and is removed when the owner is hard-deleted (CASCADE).
type Todo struct {
	ID        int64      `json:"id" db:"id"`
	TaskID    *int64     `json:"task_id,omitempty" db:"task_id"`
	Subtask   bool       `json:"subtask" db:"is_subtask"`
	Title     string     `json:"title" db:"title"`
	Done      bool       `json:"done" db:"status"`
	DueAt     *time.Time `json:"due_at,omitempty" db:"due_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	Deleted   bool       `json:"deleted" db:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}
