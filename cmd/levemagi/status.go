package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/model"
	"github.com/mogumo/levemagi/internal/phase"
	"github.com/mogumo/levemagi/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show level, XP progress and what needs attention",
	GroupID: "progression",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		level := store.Level()
		prog := store.Progress()

		if jsonOutput {
			printJSON(map[string]any{
				"level":    level,
				"total_xp": store.TotalXP(),
				"progress": prog,
				"tickets":  snap.User.GachaTickets,
			})
			return nil
		}

		fmt.Printf("Level %d  (%.1f XP)\n", level, store.TotalXP())
		fmt.Printf("%s  %.1f / %.1f to next level\n", progressBar(prog.Percent), prog.Current, prog.Required)
		fmt.Printf("Gacha tickets: %d\n\n", snap.User.GachaTickets)

		now := time.Now()
		var attention []model.Nuts
		for _, n := range snap.Nuts {
			if n.Status.Category() == model.CategoryComplete {
				continue
			}
			info := phase.Detect(now, n.StartDate, n.Deadline, n.Status)
			switch info.ID {
			case phase.Red, phase.Deadline, phase.Fire:
				attention = append(attention, n)
			}
		}
		if len(attention) > 0 {
			fmt.Println("Needs attention:")
			printNutsTable(attention, now)
		} else {
			fmt.Println(ui.RenderMuted("Nothing is burning."))
		}
		return nil
	},
}

func progressBar(percent float64) string {
	const width = 24
	filled := int(percent / 100 * width)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
