package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memsim/memsim/sim/allocation"
	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/scenario"
	"github.com/memsim/memsim/sim/trace"
)

func TestWriteAllocationText_MarksBestAndUnallocated(t *testing.T) {
	blocks := []int{100, 500, 200, 300, 600}
	processes := []int{212, 417, 112, 426}
	results, err := allocation.RunAll(blocks, processes, allocation.StrategyFirstFit, allocation.StrategyBestFit)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAllocationText(&buf, blocks, processes, results))
	out := buf.String()

	assert.Contains(t, out, "Best Fit *")
	assert.NotContains(t, out, "Worst Fit")
	assert.Contains(t, out, "--- First Fit ---")
	assert.Contains(t, out, "not allocated")
	assert.Contains(t, out, "Best strategy: Best Fit")
}

func TestWritePagingText_PadsEmptyFrames(t *testing.T) {
	r, err := paging.FIFOPageReplacement([]int{7, 0, 7}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePagingText(&buf, r))
	lines := strings.Split(buf.String(), "\n")

	// header + 3 steps after the title line
	assert.Contains(t, lines[1], "F3")
	assert.Regexp(t, `^1\s+7\s+7\s+-\s+-\s+FAULT`, lines[2])
	assert.Regexp(t, `^3\s+7\s+7\s+0\s+-\s+hit`, lines[4])
	assert.Contains(t, buf.String(), "Hit Rate    : 33.3%")
}

func TestWriteOutcomeText_AllSections(t *testing.T) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	out, err := scenario.Run(scenario.Preset("textbook"), st)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOutcomeText(&buf, out))
	text := buf.String()

	assert.Contains(t, text, "Scenario: textbook")
	assert.Contains(t, text, "=== Allocation Comparison ===")
	assert.Contains(t, text, "=== FIFO Page Replacement ===")
	assert.Contains(t, text, "=== Trace Summary ===")
	assert.Contains(t, text, "Page Faults : 10")
}
