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

const habitColumns = `id, title, group_id, created_at, interval,
	by_week_day, dt_start, dt_end, reference_link`

// CreateHabit inserts a new habit after checking its recurrence invariants
// and returns its id.
func (s *SQLiteStore) CreateHabit(ctx context.Context, habit model.Habit) (int64, error) {
	return insertHabit(ctx, s.db, habit)
}

// insertHabit writes a habit through db or an open transaction.
func insertHabit(ctx context.Context, ext sqlx.ExtContext, habit model.Habit) (int64, error) {
	if strings.TrimSpace(habit.Title) == "" {
		return 0, fmt.Errorf("habit title must not be empty")
	}
	if err := habit.Validate(); err != nil {
		return 0, fmt.Errorf("invalid habit %q: %w", habit.Title, err)
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now().UTC()
	}

	row, err := habitToRow(habit)
	if err != nil {
		return 0, err
	}
	res, err := ext.ExecContext(ctx, `
		INSERT INTO habits (
			title, group_id, created_at, interval,
			by_week_day, dt_start, dt_end, reference_link
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Title, row.GroupID, row.CreatedAt, row.Interval,
		row.ByWeekDay, row.DtStart, row.DtEnd, row.ReferenceLink,
	)
	if err != nil {
		return 0, fmt.Errorf("creating habit %q: %w", habit.Title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new habit id: %w", err)
	}
	return id, nil
}

// HabitByID retrieves a single habit.
func (s *SQLiteStore) HabitByID(ctx context.Context, id int64) (*model.Habit, error) {
	var row habitRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("habit %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting habit %d: %w", id, err)
	}
	habit, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// HabitsByGroup returns the habits belonging to a group, in id order.
func (s *SQLiteStore) HabitsByGroup(ctx context.Context, groupID int64) ([]model.Habit, error) {
	var rows []habitRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT "+habitColumns+" FROM habits WHERE group_id = ? ORDER BY id ASC", groupID)
	if err != nil {
		return nil, fmt.Errorf("querying habits for group %d: %w", groupID, err)
	}

	habits := make([]model.Habit, 0, len(rows))
	for _, row := range rows {
		habit, err := row.toModel()
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

// UpdateHabit updates the mutable columns of a habit.
func (s *SQLiteStore) UpdateHabit(ctx context.Context, habit model.Habit) error {
	if strings.TrimSpace(habit.Title) == "" {
		return fmt.Errorf("habit title must not be empty")
	}
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("invalid habit %q: %w", habit.Title, err)
	}

	row, err := habitToRow(habit)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE habits SET
			title = ?, group_id = ?, interval = ?, by_week_day = ?,
			dt_start = ?, dt_end = ?, reference_link = ?
		WHERE id = ?`,
		row.Title, row.GroupID, row.Interval, row.ByWeekDay,
		row.DtStart, row.DtEnd, row.ReferenceLink,
		row.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit %d: %w", habit.ID, err)
	}
	return checkAffected(res, "habit", habit.ID)
}
