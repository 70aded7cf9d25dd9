package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/model"
)

var trunkCmd = &cobra.Command{
	Use:     "trunk",
	Short:   "Manage trunks (issue and decision records)",
	GroupID: "tasks",
}

var trunkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trunks",
	RunE: func(cmd *cobra.Command, args []string) error {
		nutsID, _ := cmd.Flags().GetString("nuts")

		snap := store.Snapshot()
		var out []model.Trunk
		for _, t := range snap.Trunks {
			if nutsID != "" && t.NutsID != nutsID {
				continue
			}
			out = append(out, t)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tVALUE\tNUTS\tTITLE")
		for _, t := range out {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				t.ID, t.Type, t.Status, t.Value, t.NutsID, truncate(t.Title, 40))
		}
		w.Flush()
		fmt.Printf("\n%d trunks\n", len(out))
		return nil
	},
}

var trunkAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a trunk on a nuts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nutsID, _ := cmd.Flags().GetString("nuts")
		trunkType, _ := cmd.Flags().GetString("type")
		value, _ := cmd.Flags().GetInt("value")
		what, _ := cmd.Flags().GetString("what")
		idea, _ := cmd.Flags().GetString("idea")

		snap := store.Snapshot()
		if snap.FindNuts(nutsID) == nil {
			fatal("nuts %s not found", nutsID)
		}
		t := model.Trunk{
			Title:  args[0],
			NutsID: nutsID,
			Type:   model.TrunkType(trunkType),
			Value:  value,
			What:   what,
			Idea:   idea,
		}
		if trunkType != "" && !t.Type.IsValid() {
			fatal("invalid type %q (issue or non-issue)", trunkType)
		}

		created := store.CreateTrunk(t)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Title)
		return nil
	},
}

var trunkResolveCmd = &cobra.Command{
	Use:   "resolve <id> <conclusion>",
	Short: "Record a conclusion and mark the trunk done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := model.TrunkDone
		if !store.UpdateTrunk(args[0], api.TrunkPatch{Status: &status, Conclusion: &args[1]}) {
			fatal("trunk %s not found", args[0])
		}
		fmt.Printf("Resolved %s\n", args[0])
		return nil
	},
}

var trunkDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a trunk, detaching its leaves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteTrunk(args[0]) {
			fatal("trunk %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	trunkListCmd.Flags().StringP("nuts", "n", "", "filter by owning nuts ID")

	trunkAddCmd.Flags().StringP("nuts", "n", "", "owning nuts ID (required)")
	trunkAddCmd.Flags().StringP("type", "t", "", "type (issue or non-issue)")
	trunkAddCmd.Flags().Int("value", 2, "importance 1-3")
	trunkAddCmd.Flags().String("what", "", "what is the issue")
	trunkAddCmd.Flags().String("idea", "", "idea for resolving it")
	trunkAddCmd.MarkFlagRequired("nuts")

	trunkCmd.AddCommand(trunkListCmd)
	trunkCmd.AddCommand(trunkAddCmd)
	trunkCmd.AddCommand(trunkResolveCmd)
	trunkCmd.AddCommand(trunkDeleteCmd)
}
