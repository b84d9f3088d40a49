package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stride-app/stride/internal/plan"
)

var importMaterialize bool

var importCmd = &cobra.Command{
	Use:   "import <plan.json>",
	Short: "Import an AI-generated roadmap plan",
	Long: `Import reads a generated plan document (group, habits, tasks),
validates it, and persists the whole graph in one transaction. With
--materialize each habit's recurrence is expanded into occurrence tasks
between its start and end dates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading plan file: %w", err)
		}

		p, err := plan.Parse(data)
		if err != nil {
			return err
		}
		if importMaterialize {
			if err := p.Materialize(); err != nil {
				return err
			}
		}

		groupID, err := db.AddGroupPlan(cmd.Context(), p.Group, p.Habits, p.Tasks)
		if err != nil {
			return err
		}
		fmt.Printf("imported plan %s as group #%d (%d habits, %d tasks)\n",
			p.ID, groupID, len(p.Habits), len(p.Tasks))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importMaterialize, "materialize", false,
		"expand habit recurrences into occurrence tasks")
}
