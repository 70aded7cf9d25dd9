package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var nutsCmd = &cobra.Command{
	Use:     "nuts",
	Short:   "Manage nuts (deliverables)",
	GroupID: "tasks",
}

var nutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nuts",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		all, _ := cmd.Flags().GetBool("all")

		snap := store.Snapshot()
		var out []model.Nuts
		for _, n := range snap.Nuts {
			if !all && category == "" && n.Status.Category() == model.CategoryComplete {
				continue
			}
			if category != "" && string(n.Status.Category()) != category {
				continue
			}
			out = append(out, n)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		printNutsTable(out, time.Now())
		return nil
	},
}

var nutsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a nuts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetString("priority")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		deadline, _ := cmd.Flags().GetString("deadline")
		start, _ := cmd.Flags().GetString("start")

		n := model.Nuts{
			Name:        args[0],
			Description: description,
			Priority:    model.Priority(priority),
			Difficulty:  difficulty,
			Tags:        tags,
		}
		if priority != "" && !n.Priority.IsValid() {
			fatal("invalid priority %q (high, medium or low)", priority)
		}
		if deadline != "" {
			t, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				fatal("invalid deadline %q: %v", deadline, err)
			}
			n.Deadline = &t
		}
		if start != "" {
			t, err := time.Parse("2006-01-02", start)
			if err != nil {
				fatal("invalid start %q: %v", start, err)
			}
			n.StartDate = &t
		}

		created := store.CreateNuts(n)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Name)
		return nil
	},
}

var nutsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a nuts with phase and milestones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		n := snap.FindNuts(args[0])
		if n == nil {
			fatal("nuts %s not found", args[0])
		}
		if jsonOutput {
			printJSON(n)
			return nil
		}
		printNuts(*n, snap, time.Now())
		return nil
	},
}

var nutsStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a work session on a nuts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.StartNutsWork(args[0]) {
			fatal("nuts %s not found", args[0])
		}
		fmt.Printf("Work started on %s\n", args[0])
		return nil
	},
}

var nutsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a nuts as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.CompleteNuts(args[0]) {
			fatal("nuts %s not found", args[0])
		}
		fmt.Printf("Completed %s\n", args[0])
		return nil
	},
}

var nutsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a nuts and its trunks, leaves and worklogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteNuts(args[0]) {
			fatal("nuts %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	nutsListCmd.Flags().StringP("category", "c", "", "filter by category (todo, in_progress, complete)")
	nutsListCmd.Flags().BoolP("all", "a", false, "include completed nuts")

	nutsAddCmd.Flags().StringP("description", "d", "", "description")
	nutsAddCmd.Flags().StringP("priority", "p", "", "priority (high, medium or low)")
	nutsAddCmd.Flags().Int("difficulty", 5, "difficulty 1-10")
	nutsAddCmd.Flags().StringSliceP("tag", "t", nil, "tag (repeatable)")
	nutsAddCmd.Flags().String("deadline", "", "deadline (YYYY-MM-DD)")
	nutsAddCmd.Flags().String("start", "", "start date (YYYY-MM-DD)")

	nutsCmd.AddCommand(nutsListCmd)
	nutsCmd.AddCommand(nutsAddCmd)
	nutsCmd.AddCommand(nutsShowCmd)
	nutsCmd.AddCommand(nutsStartCmd)
	nutsCmd.AddCommand(nutsCompleteCmd)
	nutsCmd.AddCommand(nutsDeleteCmd)
}
