package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-app/stride/internal/model"
)

var (
	listDate  string
	listGroup int64
	listHabit int64
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks for a date, group, or habit",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "due date (today, tomorrow, or YYYY-MM-DD)")
	listCmd.Flags().Int64Var(&listGroup, "group", 0, "list tasks in this group")
	listCmd.Flags().Int64Var(&listHabit, "habit", 0, "list occurrence tasks of this habit")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		tasks []model.Task
		err   error
	)
	switch {
	case listGroup > 0:
		tasks, err = db.TasksByGroup(ctx, listGroup)
	case listHabit > 0:
		tasks, err = db.TasksByHabit(ctx, listHabit)
	default:
		day, derr := parseDay(listDate)
		if derr != nil {
			return derr
		}
		tasks, err = db.TasksForDate(ctx, day)
	}
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}
	for _, t := range tasks {
		printTask(t)
		subs, err := db.SubtasksForTask(ctx, t.ID)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			mark := " "
			if sub.Done {
				mark = "x"
			}
			fmt.Printf("    [%s] #%d  %s\n", mark, sub.ID, sub.Title)
		}
	}
	return nil
}
