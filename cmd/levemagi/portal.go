package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var portalCmd = &cobra.Command{
	Use:     "portal",
	Short:   "Manage portals (tag-based hubs)",
	GroupID: "knowledge",
}

var portalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portals",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		snap := store.Snapshot()
		var out []model.Portal
		for _, p := range snap.Portals {
			if category != "" && string(p.Category) != category {
				continue
			}
			out = append(out, p)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY\tRATING\tTAGS\tNAME")
		for _, p := range out {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				p.ID, p.Category, p.Rating, strings.Join(p.Tags, ","), truncate(p.Name, 40))
		}
		w.Flush()
		fmt.Printf("\n%d portals\n", len(out))
		return nil
	},
}

var portalAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a portal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		description, _ := cmd.Flags().GetString("description")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		rating, _ := cmd.Flags().GetInt("rating")

		p := model.Portal{
			Name:        args[0],
			Category:    model.PortalCategory(category),
			Description: description,
			Tags:        tags,
			Rating:      rating,
		}
		if category != "" && !p.Category.IsValid() {
			fatal("invalid category %q (learning, creative, work, life or other)", category)
		}

		created := store.CreatePortal(p)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Name)
		return nil
	},
}

var portalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a portal and everything its tags pull in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		var portal *model.Portal
		for i := range snap.Portals {
			if snap.Portals[i].ID == args[0] {
				portal = &snap.Portals[i]
			}
		}
		if portal == nil {
			fatal("portal %s not found", args[0])
		}
		rel := snap.RelatedTo(portal)

		if jsonOutput {
			printJSON(map[string]any{"portal": portal, "related": rel})
			return nil
		}
		fmt.Printf("Portal:   %s (%s)\n", portal.Name, portal.Category)
		if len(portal.Tags) > 0 {
			fmt.Printf("Tags:     %s\n", strings.Join(portal.Tags, ", "))
		}
		fmt.Printf("Related:  %d nuts, %d trunks, %d leaves, %d roots, %d resources\n",
			len(rel.Nuts), len(rel.Trunks), len(rel.Leaves), len(rel.Roots), len(rel.Resources))
		for _, n := range rel.Nuts {
			fmt.Printf("  nuts  %s  %s\n", n.ID, n.Name)
		}
		for _, r := range rel.Roots {
			fmt.Printf("  root  %s  %s\n", r.ID, r.Title)
		}
		for _, r := range rel.Resources {
			fmt.Printf("  res   %s  %s\n", r.ID, r.Name)
		}
		return nil
	},
}

var portalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a portal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeletePortal(args[0]) {
			fatal("portal %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	portalListCmd.Flags().StringP("category", "c", "", "filter by category")

	portalAddCmd.Flags().StringP("category", "c", "", "category (learning, creative, work, life or other)")
	portalAddCmd.Flags().StringP("description", "d", "", "description")
	portalAddCmd.Flags().StringSliceP("tag", "t", nil, "tag (repeatable)")
	portalAddCmd.Flags().Int("rating", 0, "rating 1-10")

	portalCmd.AddCommand(portalListCmd)
	portalCmd.AddCommand(portalAddCmd)
	portalCmd.AddCommand(portalShowCmd)
	portalCmd.AddCommand(portalDeleteCmd)
}
