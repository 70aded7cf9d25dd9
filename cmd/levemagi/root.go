package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var rootsCmd = &cobra.Command{
	Use:     "root",
	Short:   "Manage roots (knowledge notes)",
	GroupID: "knowledge",
}

var rootListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		rootType, _ := cmd.Flags().GetString("type")

		snap := store.Snapshot()
		var out []model.Root
		for _, r := range snap.Roots {
			if rootType != "" && string(r.Type) != rootType {
				continue
			}
			out = append(out, r)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNUTS\tTITLE")
		for _, r := range out {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Type, r.NutsID, truncate(r.Title, 50))
		}
		w.Flush()
		fmt.Printf("\n%d roots\n", len(out))
		return nil
	},
}

var rootAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rootType, _ := cmd.Flags().GetString("type")
		nutsID, _ := cmd.Flags().GetString("nuts")
		content, _ := cmd.Flags().GetString("content")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		r := model.Root{
			Title:   args[0],
			Type:    model.RootType(rootType),
			NutsID:  nutsID,
			Content: content,
			Tags:    tags,
		}
		if rootType != "" && !r.Type.IsValid() {
			fatal("invalid type %q (seed, knowledge, guide, column or archive)", rootType)
		}

		created := store.CreateRoot(r)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Title)
		return nil
	},
}

var rootPromoteCmd = &cobra.Command{
	Use:   "promote <id>",
	Short: "Promote a root one step (seed -> knowledge -> guide -> column -> archive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.PromoteRoot(args[0]) {
			fatal("root %s not found", args[0])
		}
		var after model.RootType
		snap := store.Snapshot()
		for _, r := range snap.Roots {
			if r.ID == args[0] {
				after = r.Type
			}
		}
		fmt.Printf("Promoted %s to %s\n", args[0], after)
		return nil
	},
}

var rootDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteRoot(args[0]) {
			fatal("root %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootListCmd.Flags().StringP("type", "t", "", "filter by type")

	rootAddCmd.Flags().StringP("type", "t", "", "type (seed, knowledge, guide, column or archive)")
	rootAddCmd.Flags().StringP("nuts", "n", "", "linked nuts ID")
	rootAddCmd.Flags().String("content", "", "note body")
	rootAddCmd.Flags().StringSlice("tag", nil, "tag (repeatable)")

	rootsCmd.AddCommand(rootListCmd)
	rootsCmd.AddCommand(rootAddCmd)
	rootsCmd.AddCommand(rootPromoteCmd)
	rootsCmd.AddCommand(rootDeleteCmd)
}
