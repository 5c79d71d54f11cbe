package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ersonp/planner-catalog/internal/application/handlers"
	"github.com/ersonp/planner-catalog/internal/domain/entities"
)

// writePassStats prints one pass's counters. The impediment line only
// applies to passes that deduplicate.
func writePassStats(w io.Writer, title string, s entities.PassStats, dedup bool) {
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  Included:                      %d\n", s.Included)
	fmt.Fprintf(w, "  Skipped (non-placeable type):  %d\n", s.SkippedType)
	fmt.Fprintf(w, "  Skipped (wrong world):         %d\n", s.SkippedWorld)
	fmt.Fprintf(w, "  Skipped (no id):               %d\n", s.SkippedNoID)
	fmt.Fprintf(w, "  Skipped (no size data):        %d\n", s.SkippedNoSize)
	if dedup {
		fmt.Fprintf(w, "  Skipped (duplicate impediment): %d\n", s.SkippedImpedimentDup)
	}
}

// writeInspect prints where an ID landed, or the closest matches.
func writeInspect(w io.Writer, result *handlers.InspectResult) error {
	if !result.Found() {
		if result.Raw != nil {
			fmt.Fprintf(w, "%s is in the catalog but was skipped by both passes.\n", result.ID)
		} else {
			fmt.Fprintf(w, "%s not found.\n", result.ID)
		}
		if len(result.Suggestions) > 0 {
			fmt.Fprintln(w, "Did you mean:")
			for _, s := range result.Suggestions {
				fmt.Fprintf(w, "  %s\n", s)
			}
		}
		return nil
	}

	for _, entry := range []struct {
		table string
		b     *entities.Building
	}{
		{"main", result.Main},
		{"qi", result.QI},
	} {
		if entry.b == nil {
			continue
		}
		data, err := json.MarshalIndent(entry.b, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", result.ID, err)
		}
		fmt.Fprintf(w, "[%s] %s\n%s\n", entry.table, result.ID, data)
	}
	return nil
}

// writeHistory prints runs as a table, newest first.
func writeHistory(w io.Writer, entries []handlers.HistoryEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No builds recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSOURCE\tENTITIES\tMAIN\tCHANGE\tQI\tCHANGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%d\t%s\n",
			e.Run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			e.Run.Source,
			e.Run.Entities,
			e.Run.Main.Included,
			formatDelta(e.MainDelta, e.HasPrevious),
			e.Run.QI.Included,
			formatDelta(e.QIDelta, e.HasPrevious),
		)
	}
	return tw.Flush()
}

func formatDelta(d int, ok bool) string {
	switch {
	case !ok:
		return "-"
	case d > 0:
		return "+" + strconv.Itoa(d)
	default:
		return strconv.Itoa(d)
	}
}
