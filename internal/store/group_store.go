package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/stride-app/stride/internal/model"
)

// CreateGroup inserts a new group and returns its id.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group model.Group) (int64, error) {
	if strings.TrimSpace(group.Title) == "" {
		return 0, fmt.Errorf("group title must not be empty")
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO groups (title, description, bg_color, text_color)
		VALUES (?, ?, ?, ?)`,
		group.Title, group.Description, group.BgColor, group.TextColor,
	)
	if err != nil {
		return 0, fmt.Errorf("creating group: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new group id: %w", err)
	}
	return id, nil
}

// Groups returns all groups in id order.
func (s *SQLiteStore) Groups(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := s.db.SelectContext(ctx, &groups,
		"SELECT id, title, description, bg_color, text_color FROM groups ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying groups: %w", err)
	}
	return groups, nil
}

// GroupByID retrieves a single group.
func (s *SQLiteStore) GroupByID(ctx context.Context, id int64) (*model.Group, error) {
	var group model.Group
	err := s.db.GetContext(ctx, &group,
		"SELECT id, title, description, bg_color, text_color FROM groups WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting group %d: %w", id, err)
	}
	return &group, nil
}

// GroupOverview returns every group annotated with its habit count, task
// count, and completed-task count. Soft-deleted tasks are excluded from
// both task counts.
func (s *SQLiteStore) GroupOverview(ctx context.Context) ([]model.GroupOverview, error) {
	var overviews []model.GroupOverview
	err := s.db.SelectContext(ctx, &overviews, `
		SELECT
			g.id, g.title, g.description, g.bg_color, g.text_color,
			COUNT(DISTINCT h.id) AS habit_count,
			COUNT(DISTINCT t.id) AS task_count,
			COUNT(DISTINCT CASE WHEN t.status = 1 THEN t.id END) AS completed_task
		FROM groups g
		LEFT JOIN habits h ON h.group_id = g.id
		LEFT JOIN tasks t ON t.group_id = g.id AND t.is_deleted = 0
		GROUP BY g.id
		ORDER BY g.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying group overview: %w", err)
	}
	return overviews, nil
}

// AddGroupPlan inserts a group together with its habits and tasks as a
// single transaction: either the whole graph lands or none of it does.
// Each planned task is bound to the new group id and, when its HabitIndex
// names the habit whose recurrence produced it, to that habit's new id.
func (s *SQLiteStore) AddGroupPlan(
	ctx context.Context,
	group model.Group,
	habits []model.Habit,
	tasks []PlannedTask,
) (int64, error) {
	if strings.TrimSpace(group.Title) == "" {
		return 0, fmt.Errorf("group title must not be empty")
	}
	for _, h := range habits {
		if err := h.Validate(); err != nil {
			return 0, fmt.Errorf("invalid plan habit %q: %w", h.Title, err)
		}
	}
	for _, pt := range tasks {
		if pt.HabitIndex < -1 || pt.HabitIndex >= len(habits) {
			return 0, fmt.Errorf("plan task %q: habit index %d out of range", pt.Task.Title, pt.HabitIndex)
		}
	}

	var groupID int64
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO groups (title, description, bg_color, text_color)
			VALUES (?, ?, ?, ?)`,
			group.Title, group.Description, group.BgColor, group.TextColor,
		)
		if err != nil {
			return fmt.Errorf("creating plan group: %w", err)
		}
		groupID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading plan group id: %w", err)
		}

		habitIDs := make([]int64, len(habits))
		for i, h := range habits {
			h.GroupID = &groupID
			habitIDs[i], err = insertHabit(ctx, tx, h)
			if err != nil {
				return err
			}
		}

		for _, pt := range tasks {
			task := pt.Task
			task.GroupID = &groupID
			if pt.HabitIndex >= 0 {
				task.HabitID = &habitIDs[pt.HabitIndex]
			}
			if _, err := insertTask(ctx, tx, task); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return groupID, nil
}
