package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask <task-id> <title>",
	Short: "Add a subtask to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		id, err := db.AddSubtask(cmd.Context(), taskID, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("created subtask #%d under task #%d\n", id, taskID)
		return nil
	},
}
