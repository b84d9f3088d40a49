// Package recur expands habit recurrence rules into concrete occurrence
// dates. A habit repeats every Interval weeks on the weekdays in ByWeekDay
// (Sunday = 0), from DtStart through DtEnd inclusive; a habit with an empty
// weekday set falls on DtStart's weekday.
package recur

import (
	"time"

	"github.com/stride-app/stride/internal/model"
)

// Occurrences returns the occurrence days of h that fall inside
// [from, until], in ascending order. The habit's own DtStart/DtEnd window
// bounds the result regardless of the requested range. Days are returned
// at midnight UTC.
func Occurrences(h model.Habit, from, until time.Time) ([]time.Time, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	// Weeks stay anchored at DtStart; the requested range only narrows
	// the output window.
	start := dateOf(h.DtStart)
	end := dateOf(h.DtEnd)
	lo := maxDate(start, dateOf(from))
	hi := minDate(end, dateOf(until))
	if hi.Before(lo) {
		return nil, nil
	}

	days := h.ByWeekDay
	if len(days) == 0 {
		days = []int{int(start.Weekday())}
	}

	// Walk interval-week strides anchored at the start of DtStart's week.
	weekAnchor := start.AddDate(0, 0, -int(start.Weekday()))
	var out []time.Time
	for week := weekAnchor; !week.After(hi); week = week.AddDate(0, 0, 7*h.Interval) {
		for _, wd := range days {
			day := week.AddDate(0, 0, wd)
			if day.Before(lo) || day.After(hi) {
				continue
			}
			out = append(out, day)
		}
	}
	return out, nil
}

// dateOf truncates a timestamp to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
