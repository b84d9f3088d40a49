package model

import (
	"fmt"
	"time"
)

// Habit is a recurring activity definition: every Interval weeks on the
// weekdays listed in ByWeekDay, between DtStart and DtEnd. Occurrence tasks
// generated from a habit carry its id in their HabitID column.
type Habit struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	GroupID       *int64    `json:"group_id,omitempty" db:"group_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Interval      int       `json:"interval" db:"interval"`
	ByWeekDay     []int     `json:"by_week_day" db:"-"`
	DtStart       time.Time `json:"dt_start" db:"dt_start"`
	DtEnd         time.Time `json:"dt_end" db:"dt_end"`
	ReferenceLink *string   `json:"reference_link,omitempty" db:"reference_link"`
}

// Validate checks the habit's recurrence invariants: Interval >= 1,
// ByWeekDay strictly ascending with members in 0..6 (Sunday = 0), and
// DtEnd not before DtStart.
func (h Habit) Validate() error {
	if h.Interval < 1 {
		return fmt.Errorf("habit interval must be >= 1, got %d", h.Interval)
	}
	for i, d := range h.ByWeekDay {
		if d < 0 || d > 6 {
			return fmt.Errorf("habit weekday out of range: %d", d)
		}
		if i > 0 && d <= h.ByWeekDay[i-1] {
			return fmt.Errorf("habit weekdays must be strictly ascending: %v", h.ByWeekDay)
		}
	}
	if h.DtEnd.Before(h.DtStart) {
		return fmt.Errorf("habit end date %s before start date %s",
			h.DtEnd.Format("2006-01-02"), h.DtStart.Format("2006-01-02"))
	}
	return nil
}
