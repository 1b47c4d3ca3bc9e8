package cmd

import (
	"fmt"
	"io"

	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/report"
	"github.com/memsim/memsim/sim/scenario"
	"github.com/memsim/memsim/sim/trace"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func isValidOutputFormat(format string) bool {
	return format == formatText || format == formatJSON
}

func writeAllocation(w io.Writer, format string, blocks, processes []int, results allocation.Results, st *trace.SimulationTrace) error {
	if format == formatJSON {
		data, err := report.AllocationJSON(results)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	if err := report.WriteAllocationText(w, blocks, processes, results); err != nil {
		return err
	}
	writeTraceText(w, st)
	return nil
}

func writePaging(w io.Writer, format string, result *paging.Result, st *trace.SimulationTrace) error {
	if format == formatJSON {
		data, err := report.PagingJSON(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	if err := report.WritePagingText(w, result); err != nil {
		return err
	}
	writeTraceText(w, st)
	return nil
}

func writeOutcome(w io.Writer, format string, out *scenario.Outcome) error {
	if format == formatJSON {
		data, err := report.OutcomeJSON(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return report.WriteOutcomeText(w, out)
}

func writeTraceText(w io.Writer, st *trace.SimulationTrace) {
	if !st.Enabled() {
		return
	}
	fmt.Fprintln(w)
	report.WriteTraceSummaryText(w, trace.Summarize(st))
}
