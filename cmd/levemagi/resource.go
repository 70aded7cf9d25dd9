package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var resourceCmd = &cobra.Command{
	Use:     "resource",
	Short:   "Manage resources (external assets)",
	GroupID: "knowledge",
}

var resourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		resType, _ := cmd.Flags().GetString("type")

		snap := store.Snapshot()
		var out []model.Resource
		for _, r := range snap.Resources {
			if resType != "" && string(r.Type) != resType {
				continue
			}
			out = append(out, r)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTAGS\tNAME")
		for _, r := range out {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Type, strings.Join(r.Tags, ","), truncate(r.Name, 40))
		}
		w.Flush()
		fmt.Printf("\n%d resources\n", len(out))
		return nil
	},
}

var resourceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resType, _ := cmd.Flags().GetString("type")
		url, _ := cmd.Flags().GetString("url")
		tags, _ := cmd.Flags().GetStringSlice("tag")

		r := model.Resource{
			Name: args[0],
			Type: model.ResourceType(resType),
			URL:  url,
			Tags: tags,
		}
		if resType != "" && !r.Type.IsValid() {
			fatal("invalid type %q (image, document, music, video or lyrics)", resType)
		}

		created := store.CreateResource(r)
		if jsonOutput {
			printJSON(created)
			return nil
		}
		fmt.Printf("Created %s: %s\n", created.ID, created.Name)
		return nil
	},
}

var resourceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !store.DeleteResource(args[0]) {
			fatal("resource %s not found", args[0])
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	resourceListCmd.Flags().StringP("type", "t", "", "filter by type")

	resourceAddCmd.Flags().StringP("type", "t", "", "type (image, document, music, video or lyrics)")
	resourceAddCmd.Flags().String("url", "", "asset URL")
	resourceAddCmd.Flags().StringSlice("tag", nil, "tag (repeatable)")

	resourceCmd.AddCommand(resourceListCmd)
	resourceCmd.AddCommand(resourceAddCmd)
	resourceCmd.AddCommand(resourceDeleteCmd)
}
