package scenario

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memsim/memsim/sim"
)

func TestGenerate_Deterministic(t *testing.T) {
	// GIVEN the same config twice
	cfg := DefaultGeneratorConfig()

	s1, err := Generate(cfg)
	require.NoError(t, err)
	s2, err := Generate(cfg)
	require.NoError(t, err)

	// THEN the scenarios are identical
	assert.Equal(t, s1, s2)
}

func TestGenerate_DifferentSeeds_Differ(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.PageCount = 50
	s1, err := Generate(cfg)
	require.NoError(t, err)
	cfg.Seed = 7
	s2, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, s1.Paging.Pages, s2.Paging.Pages)
}

func TestGenerate_RespectsRanges(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.BlockCount, cfg.ProcessCount, cfg.PageCount = 40, 30, 200

	s, err := Generate(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Len(t, s.Allocation.Blocks, 40)
	assert.Len(t, s.Allocation.Processes, 30)
	assert.Len(t, s.Paging.Pages, 200)
	for _, b := range s.Allocation.Blocks {
		assert.GreaterOrEqual(t, b, cfg.MinBlockSize)
		assert.LessOrEqual(t, b, cfg.MaxBlockSize)
	}
	for _, p := range s.Allocation.Processes {
		assert.GreaterOrEqual(t, p, cfg.MinProcessSize)
		assert.LessOrEqual(t, p, cfg.MaxProcessSize)
	}
	for _, p := range s.Paging.Pages {
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, cfg.MaxPage)
	}
}

func TestGenerate_SubsystemIsolation(t *testing.T) {
	// GIVEN two configs that differ only in page count
	cfg := DefaultGeneratorConfig()
	s1, err := Generate(cfg)
	require.NoError(t, err)
	cfg.PageCount = 40
	s2, err := Generate(cfg)
	require.NoError(t, err)

	// THEN allocation sections are unaffected and the page prefix is stable
	assert.Equal(t, s1.Allocation, s2.Allocation)
	assert.Equal(t, s1.Paging.Pages, s2.Paging.Pages[:len(s1.Paging.Pages)])
}

func TestGenerate_PagingOnly(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.BlockCount, cfg.ProcessCount = 0, 0
	s, err := Generate(cfg)
	require.NoError(t, err)
	assert.Nil(t, s.Allocation)
	assert.NotNil(t, s.Paging)
}

func TestGeneratorConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
	}{
		{"negative count", func(c *GeneratorConfig) { c.PageCount = -1 }},
		{"blocks without processes", func(c *GeneratorConfig) { c.ProcessCount = 0 }},
		{"nothing", func(c *GeneratorConfig) { c.BlockCount, c.ProcessCount, c.PageCount = 0, 0, 0 }},
		{"zero min block", func(c *GeneratorConfig) { c.MinBlockSize = 0 }},
		{"inverted process range", func(c *GeneratorConfig) { c.MaxProcessSize = c.MinProcessSize - 1 }},
		{"zero frames", func(c *GeneratorConfig) { c.Frames = 0 }},
		{"negative max page", func(c *GeneratorConfig) { c.MaxPage = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			tt.mutate(&cfg)
			_, err := Generate(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrInvalidInput))
		})
	}
}
