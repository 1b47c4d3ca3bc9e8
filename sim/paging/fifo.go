// Package paging simulates demand paging with FIFO page replacement.
package paging

import (
	"github.com/sirupsen/logrus"

	"github.com/memsim/memsim/sim"
	"github.com/memsim/memsim/sim/trace"
)

// Step records one page reference and the frame contents right after it.
type Step struct {
	Step     int // 1-based
	Page     int
	Frames   []int // resident pages in arrival order; a private copy
	Fault    bool
	Replaced bool // a resident page was evicted to load Page
	Evicted  int  // valid only when Replaced
}

// Result is the outcome of replaying a reference string.
type Result struct {
	FrameCount int
	PageFaults int
	PageHits   int
	Steps      []Step
	HitRate    float64 // PageHits / len(Steps) * 100
}

// FaultRate is the complement of HitRate.
func (r *Result) FaultRate() float64 {
	return sim.Percent(r.PageFaults, len(r.Steps))
}

// FIFOPageReplacement replays pages against frameCount frames, evicting the
// earliest-loaded resident page on every fault once all frames are full.
func FIFOPageReplacement(pages []int, frameCount int) (*Result, error) {
	return FIFOTraced(pages, frameCount, nil)
}

// FIFOTraced is FIFOPageReplacement recording every step into st when st is enabled.
func FIFOTraced(pages []int, frameCount int, st *trace.SimulationTrace) (*Result, error) {
	if err := ValidateInput(pages, frameCount); err != nil {
		return nil, err
	}

	frames := newFrameQueue(frameCount)
	result := &Result{
		FrameCount: frameCount,
		Steps:      make([]Step, 0, len(pages)),
	}

	for i, page := range pages {
		step := Step{Step: i + 1, Page: page}
		if frames.contains(page) {
			result.PageHits++
		} else {
			step.Fault = true
			step.Evicted, step.Replaced = frames.load(page)
			result.PageFaults++
			if step.Replaced {
				logrus.Debugf("fifo: step %d page %d evicts page %d", step.Step, page, step.Evicted)
			}
		}
		step.Frames = frames.snapshot()
		result.Steps = append(result.Steps, step)

		if st.Enabled() {
			st.RecordReplacement(trace.ReplacementRecord{
				Step:     step.Step,
				Page:     page,
				Fault:    step.Fault,
				Replaced: step.Replaced,
				Evicted:  step.Evicted,
				Resident: len(step.Frames),
			})
		}
	}

	result.HitRate = sim.Percent(result.PageHits, len(pages))
	return result, nil
}

// ValidateInput checks the FIFO preconditions: a non-empty reference string
// and at least one frame. Page numbers themselves are opaque labels.
func ValidateInput(pages []int, frameCount int) error {
	if frameCount < 1 {
		return sim.InvalidInputf("frame count must be at least 1, got %d", frameCount)
	}
	return sim.ValidateNonEmpty("pages", pages)
}
