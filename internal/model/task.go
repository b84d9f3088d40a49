package model

import "time"

// Priority bounds for tasks (lower number = higher priority).
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)

// Task is a unit of work with a due date, priority, and completion status.
// A task may belong to a Group and, when it is an occurrence generated from
// a habit's recurrence rule, carries that habit's id in HabitID. Both are
// weak references: they drive lookup and display, not lifecycle.
type Task struct {
	ID          int64      `json:"id" db:"id"`
	GroupID     *int64     `json:"group_id,omitempty" db:"group_id"`
	HabitID     *int64     `json:"habit_id,omitempty" db:"habit_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Comment     string     `json:"comment" db:"comment"`
	Done        bool       `json:"done" db:"status"`
	Priority    int        `json:"priority" db:"priority"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	DueAt       *time.Time `json:"due_at,omitempty" db:"due_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Deleted     bool       `json:"deleted" db:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`

	// References is populated by queries that load the task's reference rows.
	References []Reference `json:"references,omitempty" db:"-"`

	// Group and Habit are populated only by queries that join the owning
	// group/habit columns; nil otherwise.
	Group *Group `json:"group,omitempty" db:"-"`
	Habit *Habit `json:"habit,omitempty" db:"-"`
}
