// Package plan is the validation boundary between the generative-AI
// collaborator and the store. The AI produces a JSON roadmap — a group
// with habits and tasks — which this package decodes strictly and checks
// field by field before anything is allowed near AddGroupPlan. A malformed
// shape is rejected here, never coerced.
package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stride-app/stride/internal/model"
	"github.com/stride-app/stride/internal/recur"
	"github.com/stride-app/stride/internal/store"
)

const dayLayout = "2006-01-02"

// wire shapes: exactly what the AI collaborator is asked to produce.

type wirePlan struct {
	Group  wireGroup   `json:"group"`
	Habits []wireHabit `json:"habits"`
	Tasks  []wireTask  `json:"tasks"`
}

type wireGroup struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BgColor     string `json:"bgColor"`
	TextColor   string `json:"textColor"`
}

type wireHabit struct {
	Title         string  `json:"title"`
	Interval      int     `json:"interval"`
	ByWeekDay     []int   `json:"byWeekDay"`
	DtStart       string  `json:"dtStart"`
	DtEnd         string  `json:"dtEnd"`
	ReferenceLink *string `json:"referenceLink"`
}

type wireTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    int     `json:"priority"`
	DueAt       *string `json:"dueAt"`
	HabitIndex  *int    `json:"habitIndex"`
}

// Plan is a parsed, validated roadmap ready to persist. ID is assigned at
// parse time so callers can correlate an in-flight generation with the
// plan the user eventually accepts.
type Plan struct {
	ID     string
	Group  model.Group
	Habits []model.Habit
	Tasks  []store.PlannedTask
}

// Parse decodes and validates an AI-generated plan document. Unknown
// fields, missing titles, out-of-range priorities or weekdays, and
// unparseable dates are all rejected.
func Parse(data []byte) (*Plan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var wire wirePlan
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding plan: trailing content after document")
	}

	if wire.Group.Title == "" {
		return nil, fmt.Errorf("plan group title must not be empty")
	}

	p := &Plan{
		ID: uuid.New().String(),
		Group: model.Group{
			Title:       wire.Group.Title,
			Description: wire.Group.Description,
			BgColor:     wire.Group.BgColor,
			TextColor:   wire.Group.TextColor,
		},
	}

	for i, wh := range wire.Habits {
		habit, err := parseHabit(wh)
		if err != nil {
			return nil, fmt.Errorf("plan habit %d: %w", i, err)
		}
		p.Habits = append(p.Habits, habit)
	}

	for i, wt := range wire.Tasks {
		task, habitIndex, err := parseTask(wt, len(p.Habits))
		if err != nil {
			return nil, fmt.Errorf("plan task %d: %w", i, err)
		}
		p.Tasks = append(p.Tasks, store.PlannedTask{Task: task, HabitIndex: habitIndex})
	}

	return p, nil
}

func parseHabit(w wireHabit) (model.Habit, error) {
	if w.Title == "" {
		return model.Habit{}, fmt.Errorf("title must not be empty")
	}
	dtStart, err := time.Parse(dayLayout, w.DtStart)
	if err != nil {
		return model.Habit{}, fmt.Errorf("parsing dtStart %q: %w", w.DtStart, err)
	}
	dtEnd, err := time.Parse(dayLayout, w.DtEnd)
	if err != nil {
		return model.Habit{}, fmt.Errorf("parsing dtEnd %q: %w", w.DtEnd, err)
	}

	habit := model.Habit{
		Title:         w.Title,
		Interval:      w.Interval,
		ByWeekDay:     w.ByWeekDay,
		DtStart:       dtStart,
		DtEnd:         dtEnd,
		ReferenceLink: w.ReferenceLink,
	}
	if err := habit.Validate(); err != nil {
		return model.Habit{}, err
	}
	return habit, nil
}

func parseTask(w wireTask, habitCount int) (model.Task, int, error) {
	if w.Title == "" {
		return model.Task{}, 0, fmt.Errorf("title must not be empty")
	}
	if w.Priority < model.PriorityHighest || w.Priority > model.PriorityLowest {
		return model.Task{}, 0, fmt.Errorf("priority %d out of range [%d, %d]",
			w.Priority, model.PriorityHighest, model.PriorityLowest)
	}

	habitIndex := -1
	if w.HabitIndex != nil {
		if *w.HabitIndex < 0 || *w.HabitIndex >= habitCount {
			return model.Task{}, 0, fmt.Errorf("habit index %d out of range", *w.HabitIndex)
		}
		habitIndex = *w.HabitIndex
	}

	task := model.Task{
		Title:       w.Title,
		Description: w.Description,
		Priority:    w.Priority,
	}
	if w.DueAt != nil {
		dueAt, err := time.Parse(dayLayout, *w.DueAt)
		if err != nil {
			return model.Task{}, 0, fmt.Errorf("parsing dueAt %q: %w", *w.DueAt, err)
		}
		task.DueAt = &dueAt
	}
	return task, habitIndex, nil
}

// Materialize appends occurrence tasks for each plan habit, one per
// recurrence day inside the habit's own window. The habit's validated
// recurrence rule drives the expansion; tasks the AI listed explicitly
// are kept as is.
func (p *Plan) Materialize() error {
	for i, habit := range p.Habits {
		days, err := recur.Occurrences(habit, habit.DtStart, habit.DtEnd)
		if err != nil {
			return fmt.Errorf("expanding habit %q: %w", habit.Title, err)
		}
		for _, day := range days {
			due := day
			p.Tasks = append(p.Tasks, store.PlannedTask{
				Task: model.Task{
					Title:    habit.Title,
					Priority: model.PriorityDefault,
					DueAt:    &due,
				},
				HabitIndex: i,
			})
		}
	}
	return nil
}
