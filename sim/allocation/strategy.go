package allocation

import (
	"sort"
	"strings"

	"github.com/memsim/memsim/sim"
)

// Strategy identifies a contiguous allocation heuristic.
type Strategy string

const (
	StrategyFirstFit Strategy = "first-fit"
	StrategyBestFit  Strategy = "best-fit"
	StrategyWorstFit Strategy = "worst-fit"
	StrategyNextFit  Strategy = "next-fit"
)

// evaluationOrder is the order in which CompareResults visits strategies.
// Ties resolve to the earliest entry.
var evaluationOrder = []Strategy{StrategyFirstFit, StrategyBestFit, StrategyWorstFit, StrategyNextFit}

// strategyDisplayNames maps identifiers to the names shown in reports.
// Unexported to prevent mutation.
var strategyDisplayNames = map[Strategy]string{
	StrategyFirstFit: "First Fit",
	StrategyBestFit:  "Best Fit",
	StrategyWorstFit: "Worst Fit",
	StrategyNextFit:  "Next Fit",
}

// String returns the display name ("First Fit"), or the raw identifier if unknown.
func (s Strategy) String() string {
	if name, ok := strategyDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// AllStrategies returns every strategy in evaluation order.
func AllStrategies() []Strategy {
	out := make([]Strategy, len(evaluationOrder))
	copy(out, evaluationOrder)
	return out
}

// IsValidStrategy returns true if name is a recognized strategy identifier.
func IsValidStrategy(name string) bool {
	_, ok := strategyDisplayNames[Strategy(name)]
	return ok
}

// ValidStrategyNames returns sorted valid strategy identifiers.
func ValidStrategyNames() []string {
	names := make([]string, 0, len(strategyDisplayNames))
	for s := range strategyDisplayNames {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

// ParseStrategy accepts an identifier ("best-fit") or a display name
// ("Best Fit"), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	if IsValidStrategy(normalized) {
		return Strategy(normalized), nil
	}
	return "", sim.InvalidInputf("unknown strategy %q; valid: %s", name, strings.Join(ValidStrategyNames(), ", "))
}

// ParseStrategies parses a list of names, dropping duplicates while keeping
// first-seen order. An empty list yields AllStrategies().
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return AllStrategies(), nil
	}
	out := make([]Strategy, 0, len(names))
	seen := make(map[Strategy]bool, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
