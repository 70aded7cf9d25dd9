package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var leafCmd = &cobra.Command{
	Use:     "leaf",
	Short:   "Manage leaves (tasks)",
	GroupID: "tasks",
}

var leafListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leaves",
	RunE: func(cmd *cobra.Command, args []string) error {
		nutsID, _ := cmd.Flags().GetString("nuts")
		all, _ := cmd.Flags().GetBool("all")

		snap := store.Snapshot()
		var out []model.Leaf
		for _, l := range snap.Leaves {
			if nutsID != "" && l.NutsID != nutsID {
				continue
			}
			if !all && l.Status() == model.LeafCompleted {
				continue
			}
			out = append(out, l)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		printLeafTable(out)
		return nil
	},
}

var leafAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a leaf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		priority, _ := cmd.Flags().GetString("priority")
		nutsID, _ := cmd.Flags().GetString("nuts")
		trunkID, _ := cmd.Flags().GetString("trunk")

		l := model.Leaf{
			Title:      args[0],
			Difficulty: model.LeafDifficulty(difficulty),
			Priority:   model.Priority(priority),
			NutsID:     nutsID,
			TrunkID:    trunkID,
		}
		if difficulty != "" && !l.Difficulty.IsValid() {
			fatal("invalid difficulty %q (easy, normal or hard)", difficulty)
		}
		if priority != "" && !l.Priority.IsValid() {
			fatal("invalid priority %q (high, medium or low)", priority)
		}
		snap := store.Snapshot()
		if nutsID != "" && snap.FindNuts(nutsID) == nil {
			fatal("nuts %s not found", nutsID)
		}

		created := store.CreateLeaf(l)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s (est %.0fh)\n", created.ID, created.Title, created.Difficulty.Estimate())
		return nil
	},
}

var leafStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start the timer on a leaf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		l := snap.FindLeaf(args[0])
		if l == nil {
			fatal("leaf %s not found", args[0])
		}
		if l.Status() != model.LeafPending {
			fatal("leaf %s is already %s", args[0], l.Status())
		}
		store.StartLeaf(args[0])
		fmt.Printf("Started %s\n", args[0])
		return nil
	},
}

var leafCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a leaf and bank its XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetBool("seed")

		before := store.Level()
		sub, ok := store.CompleteLeaf(args[0], seed)
		if !ok {
			fatal("leaf %s not found or already completed", args[0])
		}
		after := store.Level()

		if jsonOutput {
			printJSON(map[string]any{
				"xp_subtotal": sub,
				"total_xp":    store.TotalXP(),
				"level":       after,
			})
			return nil
		}
		fmt.Printf("+%.1f XP (total %.1f)\n", sub, store.TotalXP())
		if after > before {
			fmt.Printf("Level up! %d -> %d (+1 gacha ticket)\n", before, after)
		}
		if seed {
			fmt.Println("Seed root planted.")
		}
		return nil
	},
}

var leafDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a leaf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteLeaf(args[0]) {
			fatal("leaf %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	leafListCmd.Flags().StringP("nuts", "n", "", "filter by owning nuts ID")
	leafListCmd.Flags().BoolP("all", "a", false, "include completed leaves")

	leafAddCmd.Flags().StringP("difficulty", "d", "", "difficulty (easy, normal or hard)")
	leafAddCmd.Flags().StringP("priority", "p", "", "priority (high, medium or low)")
	leafAddCmd.Flags().StringP("nuts", "n", "", "owning nuts ID")
	leafAddCmd.Flags().String("trunk", "", "owning trunk ID")

	leafCompleteCmd.Flags().Bool("seed", false, "plant a seed root from this leaf")

	leafCmd.AddCommand(leafListCmd)
	leafCmd.AddCommand(leafAddCmd)
	leafCmd.AddCommand(leafStartCmd)
	leafCmd.AddCommand(leafCompleteCmd)
	leafCmd.AddCommand(leafDeleteCmd)
}
