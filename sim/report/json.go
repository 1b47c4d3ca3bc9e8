package report

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/scenario"
	"github.com/memsim/memsim/sim/trace"
)

// AllocationJSON renders allocation results, in evaluation order, with the best strategy flagged.
func AllocationJSON(results allocation.Results) ([]byte, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	writeAllocation(&obj, results)
	obj.End()
	return w.Bytes(), w.Error()
}

// PagingJSON renders a FIFO replay including every step.
func PagingJSON(result *paging.Result) ([]byte, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	writePaging(&obj, result)
	obj.End()
	return w.Bytes(), w.Error()
}

// OutcomeJSON renders every section a scenario run produced, plus the trace summary when traced.
func OutcomeJSON(out *scenario.Outcome) ([]byte, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	if out.Scenario != nil && out.Scenario.Name != "" {
		obj.Name("scenario").String(out.Scenario.Name)
	}
	if out.Allocation != nil {
		a := obj.Name("allocation").Object()
		writeAllocation(&a, out.Allocation)
		a.End()
	}
	if out.Paging != nil {
		p := obj.Name("paging").Object()
		writePaging(&p, out.Paging)
		p.End()
	}
	if out.Trace.Enabled() {
		t := obj.Name("trace_summary").Object()
		writeTraceSummary(&t, trace.Summarize(out.Trace))
		t.End()
	}
	obj.End()
	return w.Bytes(), w.Error()
}

// TraceSummaryJSON renders a trace summary on its own.
func TraceSummaryJSON(summary *trace.TraceSummary) ([]byte, error) {
	w := jwriter.NewWriter()
	obj := w.Object()
	writeTraceSummary(&obj, summary)
	obj.End()
	return w.Bytes(), w.Error()
}

func writeAllocation(obj *jwriter.ObjectState, results allocation.Results) {
	best, ok := allocation.CompareResults(results)
	if ok {
		obj.Name("best_strategy").String(best.String())
	} else {
		obj.Name("best_strategy").Null()
	}

	arr := obj.Name("strategies").Array()
	for _, s := range results.Strategies() {
		o := arr.Object()
		writeResult(&o, results[s], ok && s == best)
		o.End()
	}
	arr.End()
}

func writeResult(obj *jwriter.ObjectState, r *allocation.Result, isBest bool) {
	obj.Name("name").String(r.Strategy.String())
	obj.Name("id").String(string(r.Strategy))
	obj.Name("best").Bool(isBest)
	obj.Name("score").Float64(r.Score())
	obj.Name("allocated_count").Int(r.AllocatedCount)
	obj.Name("unallocated_count").Int(r.UnallocatedCount)
	obj.Name("total_memory").Int(r.TotalMemory)
	obj.Name("total_memory_used").Int(r.TotalMemoryUsed)
	obj.Name("unallocated_memory").Int(r.UnallocatedMemory)
	obj.Name("utilization").Float64(r.Utilization)
	obj.Name("internal_fragmentation").Int(r.InternalFragmentation)
	obj.Name("free_memory").Int(r.FreeMemory)

	arr := obj.Name("allocation").Array()
	for _, idx := range r.Allocation {
		arr.Int(idx)
	}
	arr.End()
}

func writePaging(obj *jwriter.ObjectState, r *paging.Result) {
	obj.Name("algorithm").String("FIFO")
	obj.Name("frames").Int(r.FrameCount)
	obj.Name("page_faults").Int(r.PageFaults)
	obj.Name("page_hits").Int(r.PageHits)
	obj.Name("hit_rate").Float64(r.HitRate)
	obj.Name("fault_rate").Float64(r.FaultRate())

	steps := obj.Name("steps").Array()
	for _, s := range r.Steps {
		o := steps.Object()
		o.Name("step").Int(s.Step)
		o.Name("page").Int(s.Page)
		frames := o.Name("frames").Array()
		for _, f := range s.Frames {
			frames.Int(f)
		}
		frames.End()
		o.Name("fault").Bool(s.Fault)
		if s.Replaced {
			o.Name("evicted").Int(s.Evicted)
		}
		o.End()
	}
	steps.End()
}

func writeTraceSummary(obj *jwriter.ObjectState, s *trace.TraceSummary) {
	obj.Name("total_decisions").Int(s.TotalDecisions)
	obj.Name("assigned").Int(s.AssignedCount)
	obj.Name("unassigned").Int(s.UnassignedCount)
	obj.Name("mean_leftover").Float64(s.MeanLeftover)
	obj.Name("max_leftover").Int(s.MaxLeftover)
	obj.Name("mean_candidates").Float64(s.MeanCandidates)
	obj.Name("unique_blocks").Int(s.UniqueBlocks)
	obj.Name("total_references").Int(s.TotalReferences)
	obj.Name("faults").Int(s.FaultCount)
	obj.Name("evictions").Int(s.EvictionCount)

	evicted := obj.Name("eviction_distribution").Array()
	for _, page := range sortedKeys(s.EvictionDistribution) {
		e := evicted.Object()
		e.Name("page").Int(page)
		e.Name("count").Int(s.EvictionDistribution[page])
		e.End()
	}
	evicted.End()
}
