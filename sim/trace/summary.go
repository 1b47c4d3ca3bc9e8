package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions    int
	AssignedCount     int
	UnassignedCount   int
	MeanLeftover      float64 // over assigned decisions only
	MaxLeftover       int
	MeanCandidates    float64
	UniqueBlocks      int
	BlockDistribution map[int]int // block index → count of decisions choosing it

	TotalReferences      int
	FaultCount           int
	EvictionCount        int
	EvictionDistribution map[int]int // page → times evicted
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		BlockDistribution:    make(map[int]int),
		EvictionDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Allocations)
	if summary.TotalDecisions > 0 {
		totalLeftover := 0
		totalCandidates := 0
		for _, a := range st.Allocations {
			totalCandidates += len(a.Candidates)
			if a.ChosenBlock == NoBlock {
				summary.UnassignedCount++
				continue
			}
			summary.AssignedCount++
			summary.BlockDistribution[a.ChosenBlock]++
			totalLeftover += a.Leftover
			if a.Leftover > summary.MaxLeftover {
				summary.MaxLeftover = a.Leftover
			}
		}
		if summary.AssignedCount > 0 {
			summary.MeanLeftover = float64(totalLeftover) / float64(summary.AssignedCount)
		}
		summary.MeanCandidates = float64(totalCandidates) / float64(summary.TotalDecisions)
	}
	summary.UniqueBlocks = len(summary.BlockDistribution)

	summary.TotalReferences = len(st.Replacements)
	for _, r := range st.Replacements {
		if r.Fault {
			summary.FaultCount++
		}
		if r.Replaced {
			summary.EvictionCount++
			summary.EvictionDistribution[r.Evicted]++
		}
	}

	return summary
}
