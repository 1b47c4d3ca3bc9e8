package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll_DefaultsToEveryStrategy(t *testing.T) {
	results, err := RunAll(textbookBlocks, textbookProcesses)
	require.NoError(t, err)
	assert.Equal(t, AllStrategies(), results.Strategies())
}

func TestRunAll_Subset(t *testing.T) {
	results, err := RunAll(textbookBlocks, textbookProcesses, StrategyNextFit, StrategyWorstFit)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Nil(t, results[StrategyFirstFit])
	assert.Equal(t, []Strategy{StrategyWorstFit, StrategyNextFit}, results.Strategies())
}

func TestRunAll_InvalidInput_NoResults(t *testing.T) {
	results, err := RunAll([]int{}, textbookProcesses)
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestCompareResults_TextbookPicksBestFit(t *testing.T) {
	results, err := RunAll(textbookBlocks, textbookProcesses)
	require.NoError(t, err)

	best, ok := CompareResults(results)
	assert.True(t, ok)
	assert.Equal(t, StrategyBestFit, best)
	assert.Equal(t, "Best Fit", best.String())
}

func TestCompareResults_TieGoesToFirstEvaluated(t *testing.T) {
	// GIVEN first fit and next fit producing identical scores
	results, err := RunAll(textbookBlocks, textbookProcesses, StrategyNextFit, StrategyFirstFit)
	require.NoError(t, err)
	require.Equal(t, results[StrategyFirstFit].Score(), results[StrategyNextFit].Score())

	// THEN first fit wins because it is evaluated first
	best, ok := CompareResults(results)
	assert.True(t, ok)
	assert.Equal(t, StrategyFirstFit, best)
}

func TestCompareResults_OnlyConsidersPresentStrategies(t *testing.T) {
	// GIVEN only worst fit was run, and next fit is an explicit nil
	results, err := RunAll(textbookBlocks, textbookProcesses, StrategyWorstFit)
	require.NoError(t, err)
	results[StrategyNextFit] = nil

	best, ok := CompareResults(results)
	assert.True(t, ok)
	assert.Equal(t, StrategyWorstFit, best)
}

func TestCompareResults_Empty(t *testing.T) {
	best, ok := CompareResults(Results{})
	assert.False(t, ok)
	assert.Equal(t, Strategy(""), best)

	best, ok = CompareResults(nil)
	assert.False(t, ok)
	assert.Equal(t, Strategy(""), best)
}

func TestCompareResults_UtilizationBreaksCountTie(t *testing.T) {
	// GIVEN two results with the same count but different utilization
	results := Results{
		StrategyFirstFit: {AllocatedCount: 2, Utilization: 40},
		StrategyBestFit:  {AllocatedCount: 2, Utilization: 60},
		StrategyWorstFit: {AllocatedCount: 1, Utilization: 99},
	}
	best, _ := CompareResults(results)
	assert.Equal(t, StrategyBestFit, best)
}
