package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stride-app/stride/internal/model"
)

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseDay parses a calendar-date flag, accepting "today", "tomorrow", or
// YYYY-MM-DD.
func parseDay(value string) (time.Time, error) {
	now := time.Now().UTC()
	switch value {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return day, nil
}

// printTask renders one task line for list output.
func printTask(t model.Task) {
	mark := " "
	if t.Done {
		mark = "x"
	}
	due := ""
	if t.DueAt != nil {
		due = "  due " + t.DueAt.Format("2006-01-02")
	}
	fmt.Printf("[%s] #%d  p%d  %s%s\n", mark, t.ID, t.Priority, t.Title, due)
	for _, ref := range t.References {
		fmt.Printf("        ref: %s <%s>\n", ref.Name, ref.URL)
	}
}
