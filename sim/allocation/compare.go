package allocation

import "github.com/memsim/memsim/sim/trace"

// Results maps each strategy to its result. A strategy that was not run is
// absent from the map (or maps to nil); both are treated the same.
type Results map[Strategy]*Result

// Strategies returns the strategies present in r, in evaluation order.
func (r Results) Strategies() []Strategy {
	out := make([]Strategy, 0, len(r))
	for _, s := range evaluationOrder {
		if r[s] != nil {
			out = append(out, s)
		}
	}
	return out
}

// RunAll validates the input once and runs the given strategies
// (all of them when none are given).
func RunAll(blocks, processes []int, strategies ...Strategy) (Results, error) {
	return RunAllTraced(blocks, processes, nil, strategies...)
}

// RunAllTraced is RunAll with every strategy recording into st.
func RunAllTraced(blocks, processes []int, st *trace.SimulationTrace, strategies ...Strategy) (Results, error) {
	if len(strategies) == 0 {
		strategies = evaluationOrder
	}
	if err := ValidateInput(blocks, processes); err != nil {
		return nil, err
	}
	results := make(Results, len(strategies))
	for _, s := range strategies {
		r, err := RunTraced(s, blocks, processes, st)
		if err != nil {
			return nil, err
		}
		results[s] = r
	}
	return results, nil
}

// CompareResults returns the strategy with the highest Score among the
// results present, visiting strategies in evaluation order and replacing the
// leader only on a strictly greater score. ok is false when results holds no result.
func CompareResults(results Results) (best Strategy, ok bool) {
	var bestResult *Result
	for _, s := range evaluationOrder {
		r := results[s]
		if r == nil {
			continue
		}
		if bestResult == nil || r.Score() > bestResult.Score() {
			best, bestResult = s, r
		}
	}
	return best, bestResult != nil
}
