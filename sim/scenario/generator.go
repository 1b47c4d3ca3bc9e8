package scenario

import (
	"fmt"

	"github.com/memsim/memsim/sim"
)

// GeneratorConfig parameterizes random scenario generation.
// A zero count skips the corresponding section.
type GeneratorConfig struct {
	Seed int64

	BlockCount     int
	MinBlockSize   int
	MaxBlockSize   int
	ProcessCount   int
	MinProcessSize int
	MaxProcessSize int

	PageCount int
	MaxPage   int // pages are drawn from [0, MaxPage]
	Frames    int
}

// DefaultGeneratorConfig returns sizes in the range used by textbook exercises.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:           42,
		BlockCount:     5,
		MinBlockSize:   100,
		MaxBlockSize:   600,
		ProcessCount:   4,
		MinProcessSize: 50,
		MaxProcessSize: 500,
		PageCount:      13,
		MaxPage:        7,
		Frames:         3,
	}
}

// Validate checks ranges before generation.
func (c *GeneratorConfig) Validate() error {
	if c.BlockCount < 0 || c.ProcessCount < 0 || c.PageCount < 0 {
		return sim.InvalidInputf("counts must be non-negative (blocks=%d, processes=%d, pages=%d)",
			c.BlockCount, c.ProcessCount, c.PageCount)
	}
	if (c.BlockCount == 0) != (c.ProcessCount == 0) {
		return sim.InvalidInputf("blocks and processes must both be zero or both be positive")
	}
	if c.BlockCount == 0 && c.PageCount == 0 {
		return sim.InvalidInputf("nothing to generate: all counts are zero")
	}
	if c.BlockCount > 0 {
		if err := validateSizeRange("block size", c.MinBlockSize, c.MaxBlockSize); err != nil {
			return err
		}
		if err := validateSizeRange("process size", c.MinProcessSize, c.MaxProcessSize); err != nil {
			return err
		}
	}
	if c.PageCount > 0 {
		if c.MaxPage < 0 {
			return sim.InvalidInputf("max page must be non-negative, got %d", c.MaxPage)
		}
		if c.Frames < 1 {
			return sim.InvalidInputf("frames must be at least 1, got %d", c.Frames)
		}
	}
	return nil
}

func validateSizeRange(name string, lo, hi int) error {
	if lo <= 0 {
		return sim.InvalidInputf("min %s must be positive, got %d", name, lo)
	}
	if hi < lo {
		return sim.InvalidInputf("max %s (%d) must be >= min %s (%d)", name, hi, name, lo)
	}
	return nil
}

// Generate builds a scenario deterministically from cfg.Seed. Blocks,
// processes, and pages draw from separate RNG subsystems, so changing one
// count leaves the other sections unchanged.
func Generate(cfg GeneratorConfig) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	s := &Scenario{
		Version: "1",
		Name:    fmt.Sprintf("generated-%d", cfg.Seed),
		Seed:    cfg.Seed,
	}

	if cfg.BlockCount > 0 {
		blockRNG := rng.ForSubsystem(sim.SubsystemBlocks)
		processRNG := rng.ForSubsystem(sim.SubsystemProcesses)
		a := &AllocationSpec{
			Blocks:    make([]int, cfg.BlockCount),
			Processes: make([]int, cfg.ProcessCount),
		}
		for i := range a.Blocks {
			a.Blocks[i] = sim.IntInRange(blockRNG, cfg.MinBlockSize, cfg.MaxBlockSize)
		}
		for i := range a.Processes {
			a.Processes[i] = sim.IntInRange(processRNG, cfg.MinProcessSize, cfg.MaxProcessSize)
		}
		s.Allocation = a
	}

	if cfg.PageCount > 0 {
		pageRNG := rng.ForSubsystem(sim.SubsystemPages)
		p := &PagingSpec{
			Pages:  make([]int, cfg.PageCount),
			Frames: cfg.Frames,
		}
		for i := range p.Pages {
			p.Pages[i] = sim.IntInRange(pageRNG, 0, cfg.MaxPage)
		}
		s.Paging = p
	}

	return s, nil
}
