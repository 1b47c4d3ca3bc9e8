package scenario

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/trace"
)

// Outcome holds whatever the scenario's sections produced.
// A section that was absent leaves its fields zero.
type Outcome struct {
	Scenario *Scenario

	Allocation   allocation.Results
	BestStrategy allocation.Strategy
	HasBest      bool

	Paging *paging.Result

	Trace *trace.SimulationTrace // nil unless tracing was requested
}

// Run validates s and executes each present section. st may be nil.
func Run(s *Scenario, st *trace.SimulationTrace) (*Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := &Outcome{Scenario: s, Trace: st}

	if a := s.Allocation; a != nil {
		strategies, err := allocation.ParseStrategies(a.Strategies)
		if err != nil {
			return nil, errors.Wrap(err, "allocation")
		}
		results, err := allocation.RunAllTraced(a.Blocks, a.Processes, st, strategies...)
		if err != nil {
			return nil, errors.Wrap(err, "allocation")
		}
		out.Allocation = results
		out.BestStrategy, out.HasBest = allocation.CompareResults(results)
		logrus.Infof("allocation: %d strategies run, best=%s", len(results), out.BestStrategy)
	}

	if p := s.Paging; p != nil {
		result, err := paging.FIFOTraced(p.Pages, p.Frames, st)
		if err != nil {
			return nil, errors.Wrap(err, "paging")
		}
		out.Paging = result
		logrus.Infof("paging: %d references, %d faults, hit rate %.1f%%", len(result.Steps), result.PageFaults, result.HitRate)
	}

	return out, nil
}
