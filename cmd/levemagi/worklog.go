package main

import (
	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
)

var worklogCmd = &cobra.Command{
	Use:     "worklog",
	Short:   "List work sessions",
	GroupID: "tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		nutsID, _ := cmd.Flags().GetString("nuts")
		openOnly, _ := cmd.Flags().GetBool("open")

		snap := store.Snapshot()
		var out []model.Worklog
		for _, w := range snap.Worklogs {
			if nutsID != "" && w.NutsID != nutsID {
				continue
			}
			if openOnly && !w.Open() {
				continue
			}
			out = append(out, w)
		}

		if jsonOutput {
			printJSON(out)
			return nil
		}
		printWorklogTable(out)
		return nil
	},
}

func init() {
	worklogCmd.Flags().StringP("nuts", "n", "", "filter by nuts ID")
	worklogCmd.Flags().Bool("open", false, "only open sessions")
}
