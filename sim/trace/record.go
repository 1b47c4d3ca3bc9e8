// Package trace provides decision-trace recording for the allocation and paging engines.
// It has no dependencies on sim/ or its engines and stores pure data types only.
package trace

// NoBlock is the ChosenBlock value of a process that could not be placed.
const NoBlock = -1

// CandidateBlock is an unused block that was large enough for the process
// at the moment of the decision.
type CandidateBlock struct {
	BlockIndex int
	BlockSize  int
	Leftover   int // BlockSize - process size
}

// AllocationRecord captures a single block-selection decision.
type AllocationRecord struct {
	Strategy     string
	ProcessIndex int
	ProcessSize  int
	ChosenBlock  int              // NoBlock if unassigned
	Leftover     int              // internal fragmentation created by this decision
	Candidates   []CandidateBlock // eligible blocks in index order (empty if none fit)
	Reason       string
}

// ReplacementRecord captures a single page reference and its effect on the frames.
type ReplacementRecord struct {
	Step     int
	Page     int
	Fault    bool
	Replaced bool // a resident page was evicted to make room
	Evicted  int  // valid only when Replaced
	Resident int  // number of resident pages after the step
}
