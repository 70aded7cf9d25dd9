package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mogumo/levemagi/internal/leveling"
	"github.com/mogumo/levemagi/internal/model"
	"github.com/mogumo/levemagi/internal/ui"
)

var gachaCmd = &cobra.Command{
	Use:     "gacha",
	Short:   "Spend tickets on the collectible gacha",
	GroupID: "progression",
}

var gachaDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Spend one ticket and draw",
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := store.PullGacha()
		if !ok {
			fatal("no gacha tickets (level up to earn one)")
		}
		if jsonOutput {
			printJSON(item)
			return nil
		}
		name := item.Emoji + " " + item.Name
		if item.Rarity == model.RarityRare {
			name = ui.RenderRare(name + " (rare!)")
		}
		fmt.Printf("You drew %s\n", name)
		if item.Description != "" {
			fmt.Println(ui.RenderMuted(item.Description))
		}
		return nil
	},
}

var gachaCollectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Show collected items against the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Snapshot()
		if jsonOutput {
			printJSON(map[string]any{
				"collected": snap.User.CollectedItems,
				"catalog":   leveling.Catalog,
			})
			return nil
		}
		var owned int
		for _, item := range leveling.Catalog {
			mark := ui.RenderMuted("[ ]")
			name := ui.RenderMuted("???")
			if snap.User.HasItem(item.ID) {
				owned++
				mark = "[x]"
				name = item.Emoji + " " + item.Name
				if item.Rarity == model.RarityRare {
					name = ui.RenderRare(name)
				}
			}
			fmt.Printf("%s %s\n", mark, name)
		}
		fmt.Printf("\n%d / %d collected, %d tickets left\n", owned, len(leveling.Catalog), snap.User.GachaTickets)
		return nil
	},
}

func init() {
	gachaCmd.AddCommand(gachaDrawCmd)
	gachaCmd.AddCommand(gachaCollectionCmd)
}
