package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memsim/memsim/sim"
	"github.com/memsim/memsim/sim/scenario"
)

func TestRunAllocate_TextOutput(t *testing.T) {
	// GIVEN the textbook input and all strategies
	var buf bytes.Buffer

	// WHEN the allocate command body runs
	err := runAllocate(&buf, []int{100, 500, 200, 300, 600}, []int{212, 417, 112, 426}, nil, formatText, "none")
	require.NoError(t, err)

	// THEN the comparison table is written
	out := buf.String()
	assert.Contains(t, out, "=== Allocation Comparison ===")
	assert.Contains(t, out, "Best strategy: Best Fit")
	assert.NotContains(t, out, "Trace Summary")
}

func TestRunAllocate_JSONWithSubset(t *testing.T) {
	var buf bytes.Buffer
	err := runAllocate(&buf, []int{100, 500, 200, 300, 600}, []int{212, 417, 112, 426},
		[]string{"worst-fit", "next-fit"}, formatJSON, "none")
	require.NoError(t, err)

	var got struct {
		BestStrategy string `json:"best_strategy"`
		Strategies   []struct {
			ID string `json:"id"`
		} `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Worst Fit", got.BestStrategy)
	require.Len(t, got.Strategies, 2)
	assert.Equal(t, "worst-fit", got.Strategies[0].ID)
	assert.Equal(t, "next-fit", got.Strategies[1].ID)
}

func TestRunAllocate_TraceSummary(t *testing.T) {
	var buf bytes.Buffer
	err := runAllocate(&buf, []int{10, 20}, []int{15}, []string{"best-fit"}, formatText, "decisions")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "=== Trace Summary ===")
	assert.Contains(t, buf.String(), "Allocation decisions : 1 (1 assigned, 0 unassigned)")
}

func TestRunAllocate_InvalidInput(t *testing.T) {
	var buf bytes.Buffer
	err := runAllocate(&buf, []int{100, -1}, []int{5}, nil, formatText, "none")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidInput))
	assert.Empty(t, buf.String(), "nothing may be written on invalid input")

	err = runAllocate(&buf, []int{100}, []int{5}, []string{"buddy"}, formatText, "none")
	assert.Error(t, err)
}

func TestRunPaging_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	err := runPaging(&buf, []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}, 3, formatText, "decisions")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Page Faults : 10")
	assert.Contains(t, out, "Page Hits   : 3")
	assert.Contains(t, out, "Page references      : 13 (10 faults, 7 evictions)")
}

func TestRunPaging_InvalidFrames(t *testing.T) {
	var buf bytes.Buffer
	err := runPaging(&buf, []int{1, 2}, 0, formatText, "none")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidInput))
}

func TestRunScenario_PresetAndFile(t *testing.T) {
	// GIVEN a scenario file equivalent to the belady preset
	path := filepath.Join(t.TempDir(), "belady.yaml")
	var yamlBuf bytes.Buffer
	require.NoError(t, writeScenarioYAML(&yamlBuf, scenario.Preset("belady")))
	require.NoError(t, os.WriteFile(path, yamlBuf.Bytes(), 0644))

	// WHEN run from the file and from the preset
	var fromFile, fromPreset bytes.Buffer
	require.NoError(t, runScenario(&fromFile, path, "", nil, formatJSON, "none"))
	require.NoError(t, runScenario(&fromPreset, "", "belady", nil, formatJSON, "none"))

	// THEN both outputs are identical
	assert.JSONEq(t, fromPreset.String(), fromFile.String())
}

func TestRunScenario_FramesOverride(t *testing.T) {
	// GIVEN the belady preset (4 frames, 10 faults) overridden to 3 frames
	frames := 3
	var buf bytes.Buffer
	require.NoError(t, runScenario(&buf, "", "belady", &frames, formatJSON, "none"))

	var got struct {
		Paging struct {
			Frames     int `json:"frames"`
			PageFaults int `json:"page_faults"`
		} `json:"paging"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Paging.Frames)
	assert.Equal(t, 9, got.Paging.PageFaults)
}

func TestResolveScenario_Errors(t *testing.T) {
	_, err := resolveScenario("", "")
	assert.Error(t, err)
	_, err = resolveScenario("x.yaml", "textbook")
	assert.Error(t, err)
	_, err = resolveScenario("", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, isValidOutputFormat("text"))
	assert.True(t, isValidOutputFormat("json"))
	assert.False(t, isValidOutputFormat("yaml"))
}

func TestNewTrace(t *testing.T) {
	assert.Nil(t, newTrace("none"))
	assert.Nil(t, newTrace(""))
	assert.NotNil(t, newTrace("decisions"))
}
