// Package report renders engine results as aligned text tables or JSON.
// It only reads results; nothing here feeds back into the engines.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/scenario"
	"github.com/memsim/memsim/sim/trace"
)

// WriteAllocationText prints the per-strategy summary followed by the
// process-to-block mapping of every strategy.
func WriteAllocationText(w io.Writer, blocks, processes []int, results allocation.Results) error {
	best, hasBest := allocation.CompareResults(results)
	strategies := results.Strategies()

	fmt.Fprintln(w, "=== Allocation Comparison ===")
	fmt.Fprintf(w, "Blocks    : %s\n", joinInts(blocks))
	fmt.Fprintf(w, "Processes : %s\n\n", joinInts(processes))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tALLOCATED\tUSED\tUTILIZATION\tINTERNAL FRAG\tFREE\tUNALLOCATED\t")
	for _, s := range strategies {
		r := results[s]
		name := s.String()
		if hasBest && s == best {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%d/%d\t%d/%d\t%.2f%%\t%d\t%d\t%d (%d)\t\n",
			name, r.AllocatedCount, len(processes), r.TotalMemoryUsed, r.TotalMemory,
			r.Utilization, r.InternalFragmentation, r.FreeMemory, r.UnallocatedCount, r.UnallocatedMemory)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range strategies {
		fmt.Fprintf(w, "\n--- %s ---\n", s)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PROCESS\tSIZE\tBLOCK\tBLOCK SIZE\tLEFTOVER\t")
		for _, a := range results[s].Assignments {
			if a.Assigned() {
				fmt.Fprintf(tw, "P%d\t%d\tB%d\t%d\t%d\t\n", a.ProcessIndex+1, a.ProcessSize, a.BlockIndex+1, a.BlockSize, a.Leftover())
			} else {
				fmt.Fprintf(tw, "P%d\t%d\t-\t-\tnot allocated\t\n", a.ProcessIndex+1, a.ProcessSize)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if hasBest {
		fmt.Fprintf(w, "\nBest strategy: %s (score %.4f)\n", best, results[best].Score())
	}
	return nil
}

// WritePagingText prints the FIFO step table and the fault/hit totals.
// Empty frames are shown as "-" so every row has FrameCount columns.
func WritePagingText(w io.Writer, r *paging.Result) error {
	fmt.Fprintln(w, "=== FIFO Page Replacement ===")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"STEP", "PAGE"}
	for i := 0; i < r.FrameCount; i++ {
		header = append(header, fmt.Sprintf("F%d", i+1))
	}
	header = append(header, "RESULT", "EVICTED")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, s := range r.Steps {
		row := []string{fmt.Sprint(s.Step), fmt.Sprint(s.Page)}
		for i := 0; i < r.FrameCount; i++ {
			if i < len(s.Frames) {
				row = append(row, fmt.Sprint(s.Frames[i]))
			} else {
				row = append(row, "-")
			}
		}
		outcome, evicted := "hit", ""
		if s.Fault {
			outcome = "FAULT"
		}
		if s.Replaced {
			evicted = fmt.Sprint(s.Evicted)
		}
		row = append(row, outcome, evicted)
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPage Faults : %d\n", r.PageFaults)
	fmt.Fprintf(w, "Page Hits   : %d\n", r.PageHits)
	fmt.Fprintf(w, "Hit Rate    : %.1f%%\n", r.HitRate)
	return nil
}

// WriteTraceSummaryText prints trace aggregates.
func WriteTraceSummaryText(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	if s.TotalDecisions > 0 {
		fmt.Fprintf(w, "Allocation decisions : %d (%d assigned, %d unassigned)\n", s.TotalDecisions, s.AssignedCount, s.UnassignedCount)
		fmt.Fprintf(w, "Mean leftover        : %.2f\n", s.MeanLeftover)
		fmt.Fprintf(w, "Max leftover         : %d\n", s.MaxLeftover)
		fmt.Fprintf(w, "Mean candidates      : %.2f\n", s.MeanCandidates)
	}
	if s.TotalReferences > 0 {
		fmt.Fprintf(w, "Page references      : %d (%d faults, %d evictions)\n", s.TotalReferences, s.FaultCount, s.EvictionCount)
		for _, page := range sortedKeys(s.EvictionDistribution) {
			fmt.Fprintf(w, "  page %d evicted %d time(s)\n", page, s.EvictionDistribution[page])
		}
	}
}

// WriteOutcomeText prints every section a scenario run produced.
func WriteOutcomeText(w io.Writer, out *scenario.Outcome) error {
	if out.Scenario != nil && out.Scenario.Name != "" {
		fmt.Fprintf(w, "Scenario: %s\n\n", out.Scenario.Name)
	}
	if out.Allocation != nil {
		a := out.Scenario.Allocation
		if err := WriteAllocationText(w, a.Blocks, a.Processes, out.Allocation); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	if out.Paging != nil {
		if err := WritePagingText(w, out.Paging); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	if out.Trace.Enabled() {
		WriteTraceSummaryText(w, trace.Summarize(out.Trace))
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
