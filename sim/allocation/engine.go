package allocation

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/memsim/memsim/sim"
	"github.com/memsim/memsim/sim/trace"
)

// decisionReasons describes each strategy's choice for trace records.
var decisionReasons = map[Strategy]string{
	StrategyFirstFit: "first eligible block",
	StrategyBestFit:  "smallest eligible block",
	StrategyWorstFit: "largest eligible block",
	StrategyNextFit:  "next eligible block after previous assignment",
}

// FirstFit places each process in the lowest-indexed unused block that fits.
func FirstFit(blocks, processes []int) (*Result, error) {
	return Run(StrategyFirstFit, blocks, processes)
}

// BestFit places each process in the smallest unused block that fits.
func BestFit(blocks, processes []int) (*Result, error) {
	return Run(StrategyBestFit, blocks, processes)
}

// WorstFit places each process in the largest unused block that fits.
func WorstFit(blocks, processes []int) (*Result, error) {
	return Run(StrategyWorstFit, blocks, processes)
}

// NextFit is FirstFit with a scan that resumes after the block used by the
// previous successful assignment.
func NextFit(blocks, processes []int) (*Result, error) {
	return Run(StrategyNextFit, blocks, processes)
}

// Run executes one strategy without tracing.
func Run(strategy Strategy, blocks, processes []int) (*Result, error) {
	return RunTraced(strategy, blocks, processes, nil)
}

// RunTraced executes one strategy, recording every decision into st when
// st is enabled. Inputs are validated before any work is done and are never modified.
func RunTraced(strategy Strategy, blocks, processes []int, st *trace.SimulationTrace) (*Result, error) {
	if !IsValidStrategy(string(strategy)) {
		return nil, sim.InvalidInputf("unknown strategy %q; valid: %s", strategy, strings.Join(ValidStrategyNames(), ", "))
	}
	if err := ValidateInput(blocks, processes); err != nil {
		return nil, err
	}
	return run(strategy, blocks, processes, st), nil
}

// ValidateInput checks the engine preconditions shared by every strategy.
func ValidateInput(blocks, processes []int) error {
	if err := sim.ValidatePositive("blocks", blocks); err != nil {
		return err
	}
	return sim.ValidatePositive("processes", processes)
}

func run(strategy Strategy, blocks, processes []int, st *trace.SimulationTrace) *Result {
	pick := newPicker(strategy)
	used := make([]bool, len(blocks))
	allocation := make([]int, len(processes))

	for i, size := range processes {
		var candidates []int
		if st.Enabled() {
			candidates = eligibleBlocks(blocks, used, size)
		}

		chosen := pick(blocks, used, size)
		allocation[i] = chosen
		if chosen != Unassigned {
			used[chosen] = true
			logrus.Debugf("%s: process %d (size %d) -> block %d (size %d)", strategy, i, size, chosen, blocks[chosen])
		} else {
			logrus.Debugf("%s: process %d (size %d) unassigned", strategy, i, size)
		}

		if st.Enabled() {
			st.RecordAllocation(newAllocationRecord(strategy, i, size, chosen, blocks, candidates))
		}
	}

	return newResult(strategy, blocks, processes, allocation)
}

func newAllocationRecord(strategy Strategy, processIdx, size, chosen int, blocks, candidates []int) trace.AllocationRecord {
	record := trace.AllocationRecord{
		Strategy:     strategy.String(),
		ProcessIndex: processIdx,
		ProcessSize:  size,
		ChosenBlock:  trace.NoBlock,
		Candidates:   make([]trace.CandidateBlock, 0, len(candidates)),
		Reason:       "no eligible block",
	}
	for _, idx := range candidates {
		record.Candidates = append(record.Candidates, trace.CandidateBlock{
			BlockIndex: idx,
			BlockSize:  blocks[idx],
			Leftover:   blocks[idx] - size,
		})
	}
	if chosen != Unassigned {
		record.ChosenBlock = chosen
		record.Leftover = blocks[chosen] - size
		record.Reason = decisionReasons[strategy]
	}
	return record
}
