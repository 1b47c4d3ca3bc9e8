package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/memsim/memsim/sim/allocation"
)

var (
	blockSizes    []int    // Memory block sizes, in input order
	processSizes  []int    // Process request sizes, in input order
	strategyNames []string // Strategies to run (default: all)
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Compare first, best, worst, and next fit on a block/process set",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAllocate(cmd.OutOrStdout(), blockSizes, processSizes, strategyNames, outputFormat, traceLevel); err != nil {
			logrus.Fatalf("Allocation failed: %v", err)
		}
	},
}

// runAllocate runs the selected strategies and writes the comparison to w.
func runAllocate(w io.Writer, blocks, processes []int, names []string, format, level string) error {
	strategies, err := allocation.ParseStrategies(names)
	if err != nil {
		return err
	}
	logrus.Infof("Running %d strategies over %d blocks and %d processes", len(strategies), len(blocks), len(processes))

	st := newTrace(level)
	results, err := allocation.RunAllTraced(blocks, processes, st, strategies...)
	if err != nil {
		return err
	}
	return writeAllocation(w, format, blocks, processes, results, st)
}

func init() {
	allocateCmd.Flags().IntSliceVar(&blockSizes, "blocks", nil, "Comma-separated memory block sizes")
	allocateCmd.Flags().IntSliceVar(&processSizes, "processes", nil, "Comma-separated process sizes")
	allocateCmd.Flags().StringSliceVar(&strategyNames, "strategies", nil, "Strategies to run (first-fit, best-fit, worst-fit, next-fit); default all")
	_ = allocateCmd.MarkFlagRequired("blocks")
	_ = allocateCmd.MarkFlagRequired("processes")

	rootCmd.AddCommand(allocateCmd)
}
