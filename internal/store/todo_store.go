package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stride-app/stride/internal/model"
)

const todoColumns = `id, task_id, is_subtask, title, status, due_at,
	created_at, is_deleted, deleted_at`

// AddTodo inserts a standalone to-do item and returns its id.
func (s *SQLiteStore) AddTodo(ctx context.Context, todo model.Todo) (int64, error) {
	if strings.TrimSpace(todo.Title) == "" {
		return 0, fmt.Errorf("todo title must not be empty")
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now().UTC()
	}
	todo.Subtask = false
	todo.TaskID = nil

	return s.insertTodo(ctx, todo)
}

// AddSubtask inserts a subtask owned by the given task. The todos.task_id
// foreign key rejects an id with no task row behind it.
func (s *SQLiteStore) AddSubtask(ctx context.Context, taskID int64, title string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("subtask title must not be empty")
	}
	todo := model.Todo{
		TaskID:    &taskID,
		Subtask:   true,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	return s.insertTodo(ctx, todo)
}

func (s *SQLiteStore) insertTodo(ctx context.Context, todo model.Todo) (int64, error) {
	row := todoToRow(todo)
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (
			task_id, is_subtask, title, status, due_at,
			created_at, is_deleted, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.TaskID, row.IsSubtask, row.Title, row.Status, row.DueAt,
		row.CreatedAt, row.IsDeleted, row.DeletedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("creating todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new todo id: %w", err)
	}
	return id, nil
}

// SubtasksForTask returns a task's non-deleted subtasks in insertion order.
func (s *SQLiteStore) SubtasksForTask(ctx context.Context, taskID int64) ([]model.Todo, error) {
	return s.queryTodos(ctx, `
		SELECT `+todoColumns+` FROM todos
		WHERE is_deleted = 0 AND task_id = ?
		ORDER BY id ASC`, taskID)
}

// StandaloneTodos returns the non-deleted to-do items that have no owning task.
func (s *SQLiteStore) StandaloneTodos(ctx context.Context) ([]model.Todo, error) {
	return s.queryTodos(ctx, `
		SELECT `+todoColumns+` FROM todos
		WHERE is_deleted = 0 AND task_id IS NULL
		ORDER BY id ASC`)
}

func (s *SQLiteStore) queryTodos(ctx context.Context, query string, args ...interface{}) ([]model.Todo, error) {
	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}

	todos := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		todo, err := row.toModel()
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

// setTodoStatus flips a todo's status. The todo path never touches
// completed_at; that column belongs to tasks.
func (s *SQLiteStore) setTodoStatus(ctx context.Context, id int64, done bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE todos SET status = ? WHERE id = ?", boolToInt(done), id)
	if err != nil {
		return fmt.Errorf("setting todo %d status: %w", id, err)
	}
	return checkAffected(res, "todo", id)
}

// MarkTodoDeleted soft-deletes a todo. Idempotent.
func (s *SQLiteStore) MarkTodoDeleted(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE todos SET is_deleted = 1, deleted_at = COALESCE(deleted_at, ?)
		WHERE id = ?`,
		formatTime(time.Now().UTC()), id,
	)
	if err != nil {
		return fmt.Errorf("soft-deleting todo %d: %w", id, err)
	}
	return checkAffected(res, "todo", id)
}

// RemoveSubtask permanently removes a subtask row. This is the one
// hard-delete path a user can reach directly.
func (s *SQLiteStore) RemoveSubtask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting subtask %d: %w", id, err)
	}
	return checkAffected(res, "todo", id)
}
