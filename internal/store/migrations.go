package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// migration holds a single schema migration with its target version, DDL,
// and an optional data step run in the same transaction.
type migration struct {
	version int
	sql     string
	seed    func(ctx context.Context, tx *sqlx.Tx) error
}

// migrations is the ordered list of schema migrations. Versions must be
// sequential starting from 1. The applied version lives in the database
// header via PRAGMA user_version, so a crash before commit leaves the
// version untouched and the whole migration retries on next start; every
// statement uses IF NOT EXISTS semantics to tolerate that retry.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS groups (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	bg_color    TEXT NOT NULL DEFAULT '',
	text_color  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS habits (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	title          TEXT NOT NULL,
	group_id       INTEGER REFERENCES groups(id) ON DELETE SET NULL,
	created_at     TEXT NOT NULL,
	interval       INTEGER NOT NULL DEFAULT 1 CHECK(interval >= 1),
	by_week_day    TEXT NOT NULL DEFAULT '[]',
	dt_start       TEXT NOT NULL,
	dt_end         TEXT NOT NULL,
	reference_link TEXT
);

CREATE TABLE IF NOT EXISTS tasks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	group_id     INTEGER REFERENCES groups(id) ON DELETE SET NULL,
	habit_id     INTEGER REFERENCES habits(id) ON DELETE SET NULL,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	comment      TEXT NOT NULL DEFAULT '',
	status       INTEGER NOT NULL DEFAULT 0 CHECK(status IN (0, 1)),
	priority     INTEGER NOT NULL DEFAULT 3 CHECK(priority BETWEEN 1 AND 5),
	created_at   TEXT NOT NULL,
	due_at       TEXT,
	completed_at TEXT,
	is_deleted   INTEGER NOT NULL DEFAULT 0 CHECK(is_deleted IN (0, 1)),
	deleted_at   TEXT
);

CREATE TABLE IF NOT EXISTS todos (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id    INTEGER REFERENCES tasks(id) ON DELETE CASCADE,
	is_subtask INTEGER NOT NULL DEFAULT 0 CHECK(is_subtask IN (0, 1)),
	title      TEXT NOT NULL,
	status     INTEGER NOT NULL DEFAULT 0 CHECK(status IN (0, 1)),
	due_at     TEXT,
	created_at TEXT NOT NULL,
	is_deleted INTEGER NOT NULL DEFAULT 0 CHECK(is_deleted IN (0, 1)),
	deleted_at TEXT
);

CREATE TABLE IF NOT EXISTS reference (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id    INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	url        TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_due_at ON tasks(due_at);
CREATE INDEX IF NOT EXISTS idx_tasks_habit_id ON tasks(habit_id);
CREATE INDEX IF NOT EXISTS idx_tasks_group_id ON tasks(group_id);
CREATE INDEX IF NOT EXISTS idx_todos_task_id ON todos(task_id);
CREATE INDEX IF NOT EXISTS idx_reference_task_id ON reference(task_id);
CREATE INDEX IF NOT EXISTS idx_habits_group_id ON habits(group_id);
`,
		seed: seedInitialData,
	},
}

// EnsureSchema reads the persisted schema version and applies any pending
// migrations, each in its own transaction together with its version bump.
// Safe to call on every process start; a no-op once up to date.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	var current int
	if err := s.db.GetContext(ctx, &current, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return fmt.Errorf("applying migration v%d: %w", m.version, err)
			}
			if m.seed != nil {
				if err := m.seed(ctx, tx); err != nil {
					return fmt.Errorf("seeding migration v%d: %w", m.version, err)
				}
			}
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
				return fmt.Errorf("writing schema version %d: %w", m.version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// seedInitialData inserts the first-run content: a default group and a
// "getting started" task with one reference, so a new user sees a
// non-empty state. Runs inside the v1 migration transaction, which only
// executes on a fresh database, so the seed never duplicates.
func seedInitialData(ctx context.Context, tx *sqlx.Tx) error {
	now := formatTime(time.Now().UTC())

	res, err := tx.ExecContext(ctx, `
		INSERT INTO groups (title, description, bg_color, text_color)
		VALUES (?, ?, ?, ?)`,
		"My roadmap", "Your first collection of habits and tasks.",
		"#FDE68A", "#1F2937",
	)
	if err != nil {
		return fmt.Errorf("seeding default group: %w", err)
	}
	groupID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading seeded group id: %w", err)
	}

	res, err = tx.ExecContext(ctx, `
		INSERT INTO tasks (group_id, title, description, priority, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		groupID, "Getting started",
		"Add your first task, attach a habit, and check things off as you go.",
		3, now,
	)
	if err != nil {
		return fmt.Errorf("seeding guide task: %w", err)
	}
	taskID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading seeded task id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reference (task_id, name, url, created_at)
		VALUES (?, ?, ?, ?)`,
		taskID, "User guide", "https://stride.app/guide", now,
	)
	if err != nil {
		return fmt.Errorf("seeding guide reference: %w", err)
	}

	return nil
}
