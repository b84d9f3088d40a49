package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stride-app/stride/internal/model"
)

// Row types mirror the table shapes one to one and carry the raw storage
// representation: 0/1 integers for booleans, RFC 3339 UTC strings for
// timestamps, JSON arrays for weekday sets. The toModel/ toRow pairs below
// are the only place those representations are produced or interpreted.
// Conversion is total for well-formed rows; an unparseable stored date is a
// schema/mapper drift bug and fails loudly rather than defaulting.

const timeLayout = time.RFC3339

type taskRow struct {
	ID          int64          `db:"id"`
	GroupID     sql.NullInt64  `db:"group_id"`
	HabitID     sql.NullInt64  `db:"habit_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Comment     string         `db:"comment"`
	Status      int            `db:"status"`
	Priority    int            `db:"priority"`
	CreatedAt   string         `db:"created_at"`
	DueAt       sql.NullString `db:"due_at"`
	CompletedAt sql.NullString `db:"completed_at"`
	IsDeleted   int            `db:"is_deleted"`
	DeletedAt   sql.NullString `db:"deleted_at"`
}

func (r taskRow) toModel() (model.Task, error) {
	createdAt, err := parseTime("tasks.created_at", r.CreatedAt)
	if err != nil {
		return model.Task{}, err
	}
	dueAt, err := parseNullTime("tasks.due_at", r.DueAt)
	if err != nil {
		return model.Task{}, err
	}
	completedAt, err := parseNullTime("tasks.completed_at", r.CompletedAt)
	if err != nil {
		return model.Task{}, err
	}
	deletedAt, err := parseNullTime("tasks.deleted_at", r.DeletedAt)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		ID:          r.ID,
		GroupID:     nullableID(r.GroupID),
		HabitID:     nullableID(r.HabitID),
		Title:       r.Title,
		Description: r.Description,
		Comment:     r.Comment,
		Done:        r.Status != 0,
		Priority:    r.Priority,
		CreatedAt:   createdAt,
		DueAt:       dueAt,
		CompletedAt: completedAt,
		Deleted:     r.IsDeleted != 0,
		DeletedAt:   deletedAt,
		References:  []model.Reference{},
	}, nil
}

// taskToRow is the inverse of taskRow.toModel. The id travels along for
// updates; insert statements simply do not bind it.
func taskToRow(t model.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		GroupID:     nullID(t.GroupID),
		HabitID:     nullID(t.HabitID),
		Title:       t.Title,
		Description: t.Description,
		Comment:     t.Comment,
		Status:      boolToInt(t.Done),
		Priority:    t.Priority,
		CreatedAt:   formatTime(t.CreatedAt),
		DueAt:       formatNullTime(t.DueAt),
		CompletedAt: formatNullTime(t.CompletedAt),
		IsDeleted:   boolToInt(t.Deleted),
		DeletedAt:   formatNullTime(t.DeletedAt),
	}
}

type todoRow struct {
	ID        int64          `db:"id"`
	TaskID    sql.NullInt64  `db:"task_id"`
	IsSubtask int            `db:"is_subtask"`
	Title     string         `db:"title"`
	Status    int            `db:"status"`
	DueAt     sql.NullString `db:"due_at"`
	CreatedAt string         `db:"created_at"`
	IsDeleted int            `db:"is_deleted"`
	DeletedAt sql.NullString `db:"deleted_at"`
}

func (r todoRow) toModel() (model.Todo, error) {
	createdAt, err := parseTime("todos.created_at", r.CreatedAt)
	if err != nil {
		return model.Todo{}, err
	}
	dueAt, err := parseNullTime("todos.due_at", r.DueAt)
	if err != nil {
		return model.Todo{}, err
	}
	deletedAt, err := parseNullTime("todos.deleted_at", r.DeletedAt)
	if err != nil {
		return model.Todo{}, err
	}

	return model.Todo{
		ID:        r.ID,
		TaskID:    nullableID(r.TaskID),
		Subtask:   r.IsSubtask != 0,
		Title:     r.Title,
		Done:      r.Status != 0,
		DueAt:     dueAt,
		CreatedAt: createdAt,
		Deleted:   r.IsDeleted != 0,
		DeletedAt: deletedAt,
	}, nil
}

func todoToRow(t model.Todo) todoRow {
	return todoRow{
		ID:        t.ID,
		TaskID:    nullID(t.TaskID),
		IsSubtask: boolToInt(t.Subtask),
		Title:     t.Title,
		Status:    boolToInt(t.Done),
		DueAt:     formatNullTime(t.DueAt),
		CreatedAt: formatTime(t.CreatedAt),
		IsDeleted: boolToInt(t.Deleted),
		DeletedAt: formatNullTime(t.DeletedAt),
	}
}

type habitRow struct {
	ID            int64          `db:"id"`
	Title         string         `db:"title"`
	GroupID       sql.NullInt64  `db:"group_id"`
	CreatedAt     string         `db:"created_at"`
	Interval      int            `db:"interval"`
	ByWeekDay     string         `db:"by_week_day"`
	DtStart       string         `db:"dt_start"`
	DtEnd         string         `db:"dt_end"`
	ReferenceLink sql.NullString `db:"reference_link"`
}

func (r habitRow) toModel() (model.Habit, error) {
	createdAt, err := parseTime("habits.created_at", r.CreatedAt)
	if err != nil {
		return model.Habit{}, err
	}
	dtStart, err := parseTime("habits.dt_start", r.DtStart)
	if err != nil {
		return model.Habit{}, err
	}
	dtEnd, err := parseTime("habits.dt_end", r.DtEnd)
	if err != nil {
		return model.Habit{}, err
	}

	var days []int
	if err := json.Unmarshal([]byte(r.ByWeekDay), &days); err != nil {
		return model.Habit{}, fmt.Errorf("decoding habits.by_week_day %q: %w", r.ByWeekDay, err)
	}

	var link *string
	if r.ReferenceLink.Valid {
		l := r.ReferenceLink.String
		link = &l
	}

	return model.Habit{
		ID:            r.ID,
		Title:         r.Title,
		GroupID:       nullableID(r.GroupID),
		CreatedAt:     createdAt,
		Interval:      r.Interval,
		ByWeekDay:     days,
		DtStart:       dtStart,
		DtEnd:         dtEnd,
		ReferenceLink: link,
	}, nil
}

func habitToRow(h model.Habit) (habitRow, error) {
	days := h.ByWeekDay
	if days == nil {
		days = []int{}
	}
	encoded, err := json.Marshal(days)
	if err != nil {
		return habitRow{}, fmt.Errorf("encoding habit weekdays: %w", err)
	}

	var link sql.NullString
	if h.ReferenceLink != nil {
		link = sql.NullString{String: *h.ReferenceLink, Valid: true}
	}

	return habitRow{
		ID:            h.ID,
		Title:         h.Title,
		GroupID:       nullID(h.GroupID),
		CreatedAt:     formatTime(h.CreatedAt),
		Interval:      h.Interval,
		ByWeekDay:     string(encoded),
		DtStart:       formatTime(h.DtStart),
		DtEnd:         formatTime(h.DtEnd),
		ReferenceLink: link,
	}, nil
}

type referenceRow struct {
	ID        int64  `db:"id"`
	TaskID    int64  `db:"task_id"`
	Name      string `db:"name"`
	URL       string `db:"url"`
	CreatedAt string `db:"created_at"`
}

func (r referenceRow) toModel() (model.Reference, error) {
	createdAt, err := parseTime("reference.created_at", r.CreatedAt)
	if err != nil {
		return model.Reference{}, err
	}
	return model.Reference{
		ID:        r.ID,
		TaskID:    r.TaskID,
		Name:      r.Name,
		URL:       r.URL,
		CreatedAt: createdAt,
	}, nil
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", column, value, err)
	}
	return t, nil
}

func parseNullTime(column string, value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := parseTime(column, value.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatTime renders a timestamp in the canonical stored form: RFC 3339, UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func nullID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
