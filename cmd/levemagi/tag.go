package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/api"
	"github.com/mogumo/levemagi/internal/model"
)

var tagCmd = &cobra.Command{
	Use:     "tag",
	Short:   "Manage tags",
	GroupID: "knowledge",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		if jsonOutput {
			printJSON(snap.Tags)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFAV\tNAME")
		for _, t := range snap.Tags {
			fav := ""
			if t.IsFavorite {
				fav = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, fav, t.Name)
		}
		w.Flush()
		fmt.Printf("\n%d tags\n", len(snap.Tags))
		return nil
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		favorite, _ := cmd.Flags().GetBool("favorite")
		created := store.CreateTag(model.Tag{Name: args[0], IsFavorite: favorite})
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Name)
		return nil
	},
}

var tagFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a tag's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		var current *model.Tag
		for i := range snap.Tags {
			if snap.Tags[i].ID == args[0] {
				current = &snap.Tags[i]
			}
		}
		if current == nil {
			fatal("tag %s not found", args[0])
		}
		next := !current.IsFavorite
		store.UpdateTag(args[0], api.TagPatch{IsFavorite: &next})
		fmt.Printf("Favorite %s: %v\n", args[0], next)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteTag(args[0]) {
			fatal("tag %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	tagAddCmd.Flags().BoolP("favorite", "f", false, "mark as favorite")

	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagFavoriteCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
