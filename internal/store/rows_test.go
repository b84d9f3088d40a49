package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRowRoundTrip(t *testing.T) {
	groupID := sql.NullInt64{Int64: 4, Valid: true}
	row := taskRow{
		ID:          12,
		GroupID:     groupID,
		Title:       "Write weekly review",
		Description: "Summarize the week",
		Comment:     "keep it short",
		Status:      1,
		Priority:    2,
		CreatedAt:   "2024-05-30T08:15:00Z",
		DueAt:       sql.NullString{String: "2024-06-01T00:00:00Z", Valid: true},
		CompletedAt: sql.NullString{String: "2024-06-01T19:04:11Z", Valid: true},
		IsDeleted:   0,
	}

	task, err := row.toModel()
	require.NoError(t, err)
	assert.True(t, task.Done)
	assert.False(t, task.Deleted)
	require.NotNil(t, task.GroupID)
	assert.Equal(t, int64(4), *task.GroupID)
	assert.Nil(t, task.HabitID)
	require.NotNil(t, task.DueAt)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), task.DueAt.UTC())
	assert.NotNil(t, task.References, "references default to an empty list")

	back := taskToRow(task)
	assert.Equal(t, row, back)
}

func TestTaskRowNullsPassThrough(t *testing.T) {
	row := taskRow{
		ID:        3,
		Title:     "Loose end",
		Priority:  3,
		CreatedAt: "2024-05-30T08:15:00Z",
	}

	task, err := row.toModel()
	require.NoError(t, err)
	assert.Nil(t, task.GroupID)
	assert.Nil(t, task.HabitID)
	assert.Nil(t, task.DueAt)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.DeletedAt)
}

func TestTaskRowBadDateFailsLoudly(t *testing.T) {
	row := taskRow{
		ID:        1,
		Title:     "Broken",
		Priority:  3,
		CreatedAt: "yesterday-ish",
	}
	_, err := row.toModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks.created_at")

	row.CreatedAt = "2024-05-30T08:15:00Z"
	row.DueAt = sql.NullString{String: "06/01/2024", Valid: true}
	_, err = row.toModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks.due_at")
}

func TestTodoRowRoundTrip(t *testing.T) {
	row := todoRow{
		ID:        7,
		TaskID:    sql.NullInt64{Int64: 12, Valid: true},
		IsSubtask: 1,
		Title:     "Outline sections",
		Status:    0,
		CreatedAt: "2024-05-30T08:15:00Z",
	}

	todo, err := row.toModel()
	require.NoError(t, err)
	assert.True(t, todo.Subtask)
	assert.False(t, todo.Done)
	require.NotNil(t, todo.TaskID)
	assert.Equal(t, int64(12), *todo.TaskID)

	assert.Equal(t, row, todoToRow(todo))
}

func TestHabitRowRoundTrip(t *testing.T) {
	link := "https://example.com/reading-list"
	row := habitRow{
		ID:            2,
		Title:         "Read 20 pages",
		GroupID:       sql.NullInt64{Int64: 1, Valid: true},
		CreatedAt:     "2024-05-01T00:00:00Z",
		Interval:      1,
		ByWeekDay:     "[1,3,5]",
		DtStart:       "2024-05-01T00:00:00Z",
		DtEnd:         "2024-08-01T00:00:00Z",
		ReferenceLink: sql.NullString{String: link, Valid: true},
	}

	habit, err := row.toModel()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, habit.ByWeekDay)
	require.NotNil(t, habit.ReferenceLink)
	assert.Equal(t, link, *habit.ReferenceLink)

	back, err := habitToRow(habit)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}

func TestHabitRowBadWeekdayJSON(t *testing.T) {
	row := habitRow{
		ID:        1,
		Title:     "Broken",
		CreatedAt: "2024-05-01T00:00:00Z",
		Interval:  1,
		ByWeekDay: "mon,wed",
		DtStart:   "2024-05-01T00:00:00Z",
		DtEnd:     "2024-08-01T00:00:00Z",
	}
	_, err := row.toModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "by_week_day")
}
