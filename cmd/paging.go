package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/memsim/memsim/sim/paging"
	"github.com/memsim/memsim/sim/scenario"
)

var (
	referenceString []int // Page reference string
	frameCount      int   // Number of physical frames
)

var pagingCmd = &cobra.Command{
	Use:   "paging",
	Short: "Replay a page reference string with FIFO replacement",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPaging(cmd.OutOrStdout(), referenceString, frameCount, outputFormat, traceLevel); err != nil {
			logrus.Fatalf("Page replacement failed: %v", err)
		}
	},
}

// runPaging replays pages against frames and writes the step table to w.
func runPaging(w io.Writer, pages []int, frames int, format, level string) error {
	if frames > scenario.MaxSuggestedFrames {
		logrus.Warnf("frames=%d exceeds the suggested maximum of %d", frames, scenario.MaxSuggestedFrames)
	}
	st := newTrace(level)
	result, err := paging.FIFOTraced(pages, frames, st)
	if err != nil {
		return err
	}
	logrus.Infof("FIFO: %d faults, %d hits", result.PageFaults, result.PageHits)
	return writePaging(w, format, result, st)
}

func init() {
	pagingCmd.Flags().IntSliceVar(&referenceString, "pages", []int{7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2}, "Comma-separated page reference string")
	pagingCmd.Flags().IntVar(&frameCount, "frames", 3, "Number of physical frames")

	rootCmd.AddCommand(pagingCmd)
}
