package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stride-app/stride/internal/model"
)

// AddReference attaches a named URL to a task and returns the new row id.
// The foreign key rejects a task id with no row behind it.
func (s *SQLiteStore) AddReference(ctx context.Context, ref model.Reference) (int64, error) {
	if strings.TrimSpace(ref.Name) == "" {
		return 0, fmt.Errorf("reference name must not be empty")
	}
	if strings.TrimSpace(ref.URL) == "" {
		return 0, fmt.Errorf("reference url must not be empty")
	}
	if ref.CreatedAt.IsZero() {
		ref.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO reference (task_id, name, url, created_at)
		VALUES (?, ?, ?, ?)`,
		ref.TaskID, ref.Name, ref.URL, formatTime(ref.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("creating reference for task %d: %w", ref.TaskID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new reference id: %w", err)
	}
	return id, nil
}

// ReferencesForTask returns a task's references in creation order.
func (s *SQLiteStore) ReferencesForTask(ctx context.Context, taskID int64) ([]model.Reference, error) {
	var rows []referenceRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, task_id, name, url, created_at FROM reference
		WHERE task_id = ? ORDER BY created_at ASC, id ASC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("querying references for task %d: %w", taskID, err)
	}

	refs := make([]model.Reference, 0, len(rows))
	for _, row := range rows {
		ref, err := row.toModel()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// RemoveReference removes a single reference row.
func (s *SQLiteStore) RemoveReference(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reference WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reference %d: %w", id, err)
	}
	return checkAffected(res, "reference", id)
}
