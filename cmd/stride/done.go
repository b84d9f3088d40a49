package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	doneSubtask   bool
	undoneSubtask bool
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task (or subtask) completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := db.MarkDone(cmd.Context(), id, doneSubtask); err != nil {
			return err
		}
		fmt.Printf("marked #%d done\n", id)
		return nil
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Revert a task (or subtask) to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := db.MarkNotDone(cmd.Context(), id, undoneSubtask); err != nil {
			return err
		}
		fmt.Printf("marked #%d pending\n", id)
		return nil
	},
}

func init() {
	doneCmd.Flags().BoolVar(&doneSubtask, "subtask", false, "the id names a subtask")
	undoneCmd.Flags().BoolVar(&undoneSubtask, "subtask", false, "the id names a subtask")
}
