package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-app/stride/internal/model"
)

var (
	groupDesc      string
	groupBgColor   string
	groupTextColor string
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage roadmap groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := db.CreateGroup(cmd.Context(), model.Group{
			Title:       args[0],
			Description: groupDesc,
			BgColor:     groupBgColor,
			TextColor:   groupTextColor,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created group #%d\n", id)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := db.Groups(cmd.Context())
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("#%d  %s  %s\n", g.ID, g.Title, g.Description)
		}
		return nil
	},
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show groups with habit and task counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		overviews, err := db.GroupOverview(cmd.Context())
		if err != nil {
			return err
		}
		for _, o := range overviews {
			fmt.Printf("#%d  %-24s  habits %d  tasks %d/%d done\n",
				o.ID, o.Title, o.HabitCount, o.CompletedTask, o.TaskCount)
		}
		return nil
	},
}

func init() {
	groupAddCmd.Flags().StringVar(&groupDesc, "desc", "", "group description")
	groupAddCmd.Flags().StringVar(&groupBgColor, "bg", "", "background color")
	groupAddCmd.Flags().StringVar(&groupTextColor, "fg", "", "text color")

	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupListCmd)
}
