package model

// Group is a named roadmap/category that owns habits and tasks.
// Groups are never deleted in the current product scope; task and habit
// rows reference them weakly.
type Group struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	BgColor     string `json:"bg_color" db:"bg_color"`
	TextColor   string `json:"text_color" db:"text_color"`
}

// GroupOverview is a Group annotated with aggregate counts for list views.
type GroupOverview struct {
	Group
	HabitCount    int `json:"habit_count" db:"habit_count"`
	TaskCount     int `json:"task_count" db:"task_count"`
	CompletedTask int `json:"completed_task" db:"completed_task"`
}
