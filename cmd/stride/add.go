package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stride-app/stride/internal/model"
)

var (
	addDesc     string
	addComment  string
	addPriority int
	addDue      string
	addGroup    int64
	addHabit    int64
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDesc, "desc", "", "task description")
	addCmd.Flags().StringVar(&addComment, "comment", "", "task comment")
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 0, "priority 1 (highest) to 5 (lowest)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (today, tomorrow, or YYYY-MM-DD)")
	addCmd.Flags().Int64Var(&addGroup, "group", 0, "owning group id")
	addCmd.Flags().Int64Var(&addHabit, "habit", 0, "originating habit id")
}

func runAdd(cmd *cobra.Command, args []string) error {
	task := model.Task{
		Title:       args[0],
		Description: addDesc,
		Comment:     addComment,
		Priority:    addPriority,
	}
	if task.Priority == 0 {
		task.Priority = cfg.DefaultPriority
	}
	if addDue != "" {
		day, err := parseDay(addDue)
		if err != nil {
			return err
		}
		due := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		task.DueAt = &due
	}
	if addGroup > 0 {
		task.GroupID = &addGroup
	}
	if addHabit > 0 {
		task.HabitID = &addHabit
	}

	id, err := db.CreateTask(cmd.Context(), task)
	if err != nil {
		return err
	}
	fmt.Printf("created task #%d\n", id)
	return nil
}
