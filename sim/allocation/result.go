package allocation

import "github.com/memsim/memsim/sim"

// Unassigned is the block index recorded for a process no block could host.
const Unassigned = -1

// Assignment is the outcome for one process request.
type Assignment struct {
	ProcessIndex int
	ProcessSize  int
	BlockIndex   int // Unassigned if no block had sufficient free capacity
	BlockSize    int // 0 when unassigned
}

// Assigned reports whether the process was placed in a block.
func (a Assignment) Assigned() bool {
	return a.BlockIndex != Unassigned
}

// Leftover is the internal fragmentation this assignment leaves in its block.
func (a Assignment) Leftover() int {
	if !a.Assigned() {
		return 0
	}
	return a.BlockSize - a.ProcessSize
}

// Result is the outcome of running one strategy over a block/process set.
// All aggregates are derived from Allocation by newResult and never updated afterwards.
type Result struct {
	Strategy    Strategy
	Allocation  []int // block index per process, Unassigned if none
	Assignments []Assignment

	AllocatedCount    int
	TotalMemoryUsed   int     // sum of assigned process sizes
	TotalMemory       int     // sum of block sizes
	Utilization       float64 // TotalMemoryUsed / TotalMemory * 100
	UnallocatedCount  int
	UnallocatedMemory int // sum of unassigned process sizes

	InternalFragmentation int // sum over used blocks of block size - process size
	FreeMemory            int // sum of sizes of blocks that host no process
}

// Score ranks strategies: every assigned process counts 1, and utilization
// breaks ties between strategies that assign the same number of processes.
func (r *Result) Score() float64 {
	return float64(r.AllocatedCount) + r.Utilization/100
}

func newResult(strategy Strategy, blocks, processes, allocation []int) *Result {
	r := &Result{
		Strategy:    strategy,
		Allocation:  allocation,
		Assignments: make([]Assignment, len(processes)),
		TotalMemory: sim.Sum(blocks),
	}
	used := make([]bool, len(blocks))
	for i, blockIdx := range allocation {
		a := Assignment{ProcessIndex: i, ProcessSize: processes[i], BlockIndex: blockIdx}
		if blockIdx == Unassigned {
			r.UnallocatedCount++
			r.UnallocatedMemory += processes[i]
		} else {
			a.BlockSize = blocks[blockIdx]
			used[blockIdx] = true
			r.AllocatedCount++
			r.TotalMemoryUsed += processes[i]
			r.InternalFragmentation += a.Leftover()
		}
		r.Assignments[i] = a
	}
	for i, size := range blocks {
		if !used[i] {
			r.FreeMemory += size
		}
	}
	r.Utilization = sim.Percent(r.TotalMemoryUsed, r.TotalMemory)
	return r
}
