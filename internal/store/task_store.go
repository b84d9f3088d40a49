package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/stride-app/stride/internal/model"
)

const taskColumns = `id, group_id, habit_id, title, description, comment,
	status, priority, created_at, due_at, completed_at, is_deleted, deleted_at`

// CreateTask inserts a new task and returns its database-assigned id.
// The title must be non-empty; priority passes through to the schema's
// CHECK constraint, so out-of-range values are rejected by the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task model.Task) (int64, error) {
	return insertTask(ctx, s.db, task)
}

// insertTask writes a task through db or an open transaction, normalizing
// defaults and the status/completed_at invariant on the way in.
func insertTask(ctx context.Context, ext sqlx.ExtContext, task model.Task) (int64, error) {
	if strings.TrimSpace(task.Title) == "" {
		return 0, fmt.Errorf("task title must not be empty")
	}
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	// Priority is deliberately not defaulted here: the schema CHECK
	// constraint is the authority, and out-of-range values must reach it
	// and be rejected.
	// completed_at is non-null exactly when the task is done.
	if task.Done && task.CompletedAt == nil {
		task.CompletedAt = &now
	} else if !task.Done {
		task.CompletedAt = nil
	}

	row := taskToRow(task)
	res, err := ext.ExecContext(ctx, `
		INSERT INTO tasks (
			group_id, habit_id, title, description, comment,
			status, priority, created_at, due_at, completed_at,
			is_deleted, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.GroupID, row.HabitID, row.Title, row.Description, row.Comment,
		row.Status, row.Priority, row.CreatedAt, row.DueAt, row.CompletedAt,
		row.IsDeleted, row.DeletedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("creating task %q: %w", task.Title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new task id: %w", err)
	}
	return id, nil
}

// TaskByID retrieves a single task with its references.
func (s *SQLiteStore) TaskByID(ctx context.Context, id int64) (*model.Task, error) {
	var row taskRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}

	task, err := row.toModel()
	if err != nil {
		return nil, err
	}
	refs, err := s.ReferencesForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	task.References = refs
	return &task, nil
}

// TasksForDate returns the non-deleted tasks whose due date falls on the
// given calendar day, ordered by due time then id. Stored timestamps are
// canonical RFC 3339 UTC strings, so the day match is a half-open string
// range the due_at index can serve.
func (s *SQLiteStore) TasksForDate(ctx context.Context, day time.Time) ([]model.Task, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 1)

	return s.queryTasks(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE is_deleted = 0 AND due_at >= ? AND due_at < ?
		ORDER BY due_at ASC, id ASC`,
		formatTime(start), formatTime(end))
}

// TasksByGroup returns the non-deleted tasks belonging to a group.
func (s *SQLiteStore) TasksByGroup(ctx context.Context, groupID int64) ([]model.Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE is_deleted = 0 AND group_id = ?
		ORDER BY due_at ASC, id ASC`, groupID)
}

// TasksByHabit returns the non-deleted occurrence tasks generated from a habit.
func (s *SQLiteStore) TasksByHabit(ctx context.Context, habitID int64) ([]model.Task, error) {
	return s.queryTasks(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE is_deleted = 0 AND habit_id = ?
		ORDER BY due_at ASC, id ASC`, habitID)
}

func (s *SQLiteStore) queryTasks(ctx context.Context, query string, args ...interface{}) ([]model.Task, error) {
	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toModel()
		if err != nil {
			return nil, err
		}
		refs, err := s.ReferencesForTask(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		task.References = refs
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// UpdateTask updates the mutable columns of a task. completed_at is managed
// from the new status: set (and kept, once set) while done, cleared when
// the task reverts to pending.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("task title must not be empty")
	}

	row := taskToRow(task)
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?, description = ?, comment = ?, status = ?, priority = ?,
			due_at = ?, group_id = ?, habit_id = ?,
			completed_at = CASE WHEN ? = 1 THEN COALESCE(completed_at, ?) ELSE NULL END
		WHERE id = ?`,
		row.Title, row.Description, row.Comment, row.Status, row.Priority,
		row.DueAt, row.GroupID, row.HabitID,
		row.Status, formatTime(time.Now().UTC()),
		row.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", task.ID, err)
	}
	return checkAffected(res, "task", task.ID)
}

// MarkDone marks a task (or, with subtask set, a todo) as completed.
// Idempotent: a task already done keeps its original completed_at.
func (s *SQLiteStore) MarkDone(ctx context.Context, id int64, subtask bool) error {
	if subtask {
		return s.setTodoStatus(ctx, id, true)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET status = 1, completed_at = COALESCE(completed_at, ?)
		WHERE id = ?`,
		formatTime(time.Now().UTC()), id,
	)
	if err != nil {
		return fmt.Errorf("marking task %d done: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

// MarkNotDone reverts a task (or todo) to pending, clearing completed_at
// on the task path.
func (s *SQLiteStore) MarkNotDone(ctx context.Context, id int64, subtask bool) error {
	if subtask {
		return s.setTodoStatus(ctx, id, false)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET status = 0, completed_at = NULL WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking task %d not done: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

// MarkTaskDeleted soft-deletes a task: the row stays, flagged with its
// deletion time, and read queries exclude it. Idempotent.
func (s *SQLiteStore) MarkTaskDeleted(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET is_deleted = 1, deleted_at = COALESCE(deleted_at, ?)
		WHERE id = ?`,
		formatTime(time.Now().UTC()), id,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting task %d: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

// RemoveTask permanently removes a task row. Owned rows go with it: the
// foreign keys cascade the delete to its subtasks and references.
func (s *SQLiteStore) RemoveTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return checkAffected(res, "task", id)
}

// checkAffected maps a zero-row targeted write to ErrNotFound.
func checkAffected(res sql.Result, entity string, id int64) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
