package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mogumo/levemagi/internal/model"
	"github.com/mogumo/levemagi/internal/phase"
	"github.com/mogumo/levemagi/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func printNutsTable(nuts []model.Nuts, now time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPHASE\tQUADRANT\tDEADLINE\tNAME")
	for _, n := range nuts {
		info := phase.Detect(now, n.StartDate, n.Deadline, n.Status)
		quad := phase.Classify(n.Priority, info.ID)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			n.ID,
			n.Status,
			ui.RenderPhase(info.Label, info.Color),
			quad.Emoji+" "+quad.Label,
			formatDate(n.Deadline),
			truncate(n.Name, 40),
		)
	}
	w.Flush()
	fmt.Printf("\n%d nuts\n", len(nuts))
}

func printNuts(n model.Nuts, st model.State, now time.Time) {
	info := phase.Detect(now, n.StartDate, n.Deadline, n.Status)
	quad := phase.Classify(n.Priority, info.ID)

	fmt.Printf("ID:          %s\n", n.ID)
	fmt.Printf("Name:        %s\n", n.Name)
	fmt.Printf("Status:      %s (%d%%)\n", n.Status, n.Status.Progress())
	fmt.Printf("Priority:    %s\n", n.Priority)
	fmt.Printf("Phase:       %s\n", ui.RenderPhase(info.Label, info.Color))
	fmt.Printf("Quadrant:    %s %s\n", quad.Emoji, quad.Label)
	fmt.Printf("Start:       %s\n", formatDate(n.StartDate))
	fmt.Printf("Deadline:    %s\n", formatDate(n.Deadline))
	if n.Description != "" {
		fmt.Printf("Description: %s\n", n.Description)
	}
	if len(n.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(n.Tags, ", "))
	}

	var trunks, leaves, done int
	for _, t := range st.Trunks {
		if t.NutsID == n.ID {
			trunks++
		}
	}
	for _, l := range st.Leaves {
		if l.NutsID == n.ID {
			leaves++
			if l.Status() == model.LeafCompleted {
				done++
			}
		}
	}
	fmt.Printf("Trunks:      %d\n", trunks)
	fmt.Printf("Leaves:      %d (%d done)\n", leaves, done)

	if n.StartDate != nil && n.Deadline != nil {
		fmt.Println("Milestones:")
		for _, seg := range phase.Milestones(*n.StartDate, *n.Deadline) {
			fmt.Printf("  %s  %s .. %s\n",
				ui.RenderPhase(seg.Label, seg.Color),
				seg.Start.Format("2006-01-02"),
				seg.End.Format("2006-01-02"),
			)
		}
	}
}

func printLeafTable(leaves []model.Leaf) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDIFFICULTY\tNUTS\tXP\tTITLE")
	for _, l := range leaves {
		xpCol := "-"
		if l.XPSubtotal != nil {
			xpCol = fmt.Sprintf("%.1f", *l.XPSubtotal)
		}
		nutsCol := l.NutsID
		if nutsCol == "" {
			nutsCol = ui.RenderMuted("(unlinked)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.Status(),
			l.Difficulty,
			nutsCol,
			xpCol,
			truncate(l.Title, 40),
		)
	}
	w.Flush()
	fmt.Printf("\n%d leaves\n", len(leaves))
}

func printWorklogTable(logs []model.Worklog) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUTS\tSTARTED\tENDED\tLV\tNAME")
	for _, l := range logs {
		ended := "open"
		if l.CompletedAt != nil {
			ended = l.CompletedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			l.ID,
			l.NutsID,
			l.StartedAt.Format("2006-01-02 15:04"),
			ended,
			l.Level,
			truncate(l.Name, 40),
		)
	}
	w.Flush()
	fmt.Printf("\n%d worklogs\n", len(logs))
}
