package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmSubtask bool

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task (soft) or remove a subtask (hard)",
	Long: `Rm soft-deletes a task: the row is kept, flagged, and hidden from
all list views. With --subtask the id names a subtask, which is removed
permanently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if rmSubtask {
			if err := db.RemoveSubtask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("removed subtask #%d\n", id)
			return nil
		}
		if err := db.MarkTaskDeleted(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted task #%d\n", id)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVar(&rmSubtask, "subtask", false, "the id names a subtask")
}
