package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/memsim/memsim/sim/trace"
)

var (
	logLevel     string // Log verbosity level
	outputFormat string // text or json
	traceLevel   string // Decision trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "memsim",
	Short: "Deterministic simulator for memory allocation and page replacement",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !isValidOutputFormat(outputFormat) {
			logrus.Fatalf("Invalid output format %q; valid: text, json", outputFormat)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, decisions", traceLevel)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newTrace returns a recorder for the --trace level, or nil when tracing is off.
func newTrace(level string) *trace.SimulationTrace {
	if trace.TraceLevel(level) != trace.TraceLevelDecisions {
		return nil
	}
	return trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
}

// init sets up persistent flags shared by every subcommand
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
}
