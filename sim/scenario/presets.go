package scenario

import (
	"sort"
)

// presets are built-in scenarios. Access through Preset, which returns a copy.
var presets = map[string]Scenario{
	"textbook": {
		Version: "1",
		Name:    "textbook",
		Allocation: &AllocationSpec{
			Blocks:    []int{100, 500, 200, 300, 600},
			Processes: []int{212, 417, 112, 426},
		},
		Paging: &PagingSpec{
			Pages:  []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2},
			Frames: 3,
		},
	},
	"belady": {
		Version: "1",
		Name:    "belady",
		Paging: &PagingSpec{
			Pages:  []int{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5},
			Frames: 4,
		},
	},
	"exact-fit": {
		Version: "1",
		Name:    "exact-fit",
		Allocation: &AllocationSpec{
			Blocks:    []int{512},
			Processes: []int{512},
		},
	},
	"next-fit-wrap": {
		Version: "1",
		Name:    "next-fit-wrap",
		Allocation: &AllocationSpec{
			Blocks:     []int{100, 300, 100},
			Processes:  []int{200, 50},
			Strategies: []string{"first-fit", "next-fit"},
		},
	},
	"single-frame": {
		Version: "1",
		Name:    "single-frame",
		Paging: &PagingSpec{
			Pages:  []int{1, 1, 2, 1, 1, 3},
			Frames: 1,
		},
	},
}

// PresetNames returns sorted preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a deep copy of the named preset. Returns nil if not found.
func Preset(name string) *Scenario {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	return p.clone()
}

func (s Scenario) clone() *Scenario {
	out := s
	if s.Allocation != nil {
		a := *s.Allocation
		a.Blocks = append([]int(nil), a.Blocks...)
		a.Processes = append([]int(nil), a.Processes...)
		a.Strategies = append([]string(nil), a.Strategies...)
		out.Allocation = &a
	}
	if s.Paging != nil {
		p := *s.Paging
		p.Pages = append([]int(nil), p.Pages...)
		out.Paging = &p
	}
	return &out
}
