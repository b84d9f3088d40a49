package store

import (
	"context"
	"time"

	"github.com/stride-app/stride/internal/model"
)

// PlannedTask is a task inside a group plan, not yet persisted. HabitIndex
// points at the plan habit whose recurrence produced the task, or -1 when
// the task stands on its own.
type PlannedTask struct {
	Task       model.Task
	HabitIndex int
}

// Store is the persistence interface the UI layer programs against. All
// methods take the caller's context and return typed entities; database
// errors propagate wrapped, with ErrNotFound for zero-row targeted writes.
type Store interface {
	// === Schema ===

	EnsureSchema(ctx context.Context) error
	Close() error

	// === Tasks ===

	CreateTask(ctx context.Context, task model.Task) (int64, error)
	TaskByID(ctx context.Context, id int64) (*model.Task, error)
	TasksForDate(ctx context.Context, day time.Time) ([]model.Task, error)
	TasksByGroup(ctx context.Context, groupID int64) ([]model.Task, error)
	TasksByHabit(ctx context.Context, habitID int64) ([]model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) error
	MarkDone(ctx context.Context, id int64, subtask bool) error
	MarkNotDone(ctx context.Context, id int64, subtask bool) error
	MarkTaskDeleted(ctx context.Context, id int64) error
	RemoveTask(ctx context.Context, id int64) error

	// === Todos & subtasks ===

	AddTodo(ctx context.Context, todo model.Todo) (int64, error)
	AddSubtask(ctx context.Context, taskID int64, title string) (int64, error)
	SubtasksForTask(ctx context.Context, taskID int64) ([]model.Todo, error)
	StandaloneTodos(ctx context.Context) ([]model.Todo, error)
	MarkTodoDeleted(ctx context.Context, id int64) error
	RemoveSubtask(ctx context.Context, id int64) error

	// === Groups ===

	CreateGroup(ctx context.Context, group model.Group) (int64, error)
	Groups(ctx context.Context) ([]model.Group, error)
	GroupByID(ctx context.Context, id int64) (*model.Group, error)
	GroupOverview(ctx context.Context) ([]model.GroupOverview, error)
	AddGroupPlan(ctx context.Context, group model.Group, habits []model.Habit, tasks []PlannedTask) (int64, error)

	// === Habits ===

	CreateHabit(ctx context.Context, habit model.Habit) (int64, error)
	HabitByID(ctx context.Context, id int64) (*model.Habit, error)
	HabitsByGroup(ctx context.Context, groupID int64) ([]model.Habit, error)
	UpdateHabit(ctx context.Context, habit model.Habit) error

	// === References ===

	AddReference(ctx context.Context, ref model.Reference) (int64, error)
	ReferencesForTask(ctx context.Context, taskID int64) ([]model.Reference, error)
	RemoveReference(ctx context.Context, id int64) error
}

var _ Store = (*SQLiteStore)(nil)
