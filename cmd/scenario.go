package cmd

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/memsim/memsim/sim/scenario"
)

var (
	scenarioFile   string // Path to a YAML scenario file
	scenarioPreset string // Name of a built-in scenario
	scenarioFrames int    // Overrides paging.frames when set
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run, list, or print scenarios",
}

// --- memsim scenario run ---

var scenarioRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario file or preset",
	Run: func(cmd *cobra.Command, args []string) {
		var frames *int
		if cmd.Flags().Changed("frames") {
			frames = &scenarioFrames
		}
		if err := runScenario(cmd.OutOrStdout(), scenarioFile, scenarioPreset, frames, outputFormat, traceLevel); err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
	},
}

// --- memsim scenario presets ---

var scenarioPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenario.PresetNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// --- memsim scenario show ---

var scenarioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a scenario as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := resolveScenario(scenarioFile, scenarioPreset)
		if err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
		if err := writeScenarioYAML(cmd.OutOrStdout(), s); err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
	},
}

// resolveScenario loads exactly one of file or preset.
func resolveScenario(file, preset string) (*scenario.Scenario, error) {
	switch {
	case file != "" && preset != "":
		return nil, errors.New("--file and --preset are mutually exclusive")
	case file != "":
		return scenario.LoadScenario(file)
	case preset != "":
		s := scenario.Preset(preset)
		if s == nil {
			return nil, errors.Newf("unknown preset %q; available: %v", preset, scenario.PresetNames())
		}
		return s, nil
	}
	return nil, errors.New("one of --file or --preset is required")
}

// runScenario resolves and runs a scenario. A non-nil frames replaces the
// scenario's frame count; it is ignored when the scenario has no paging section.
func runScenario(w io.Writer, file, preset string, frames *int, format, level string) error {
	s, err := resolveScenario(file, preset)
	if err != nil {
		return err
	}
	if frames != nil {
		if s.Paging == nil {
			logrus.Warnf("--frames ignored: scenario %q has no paging section", s.Name)
		} else {
			s.Paging.Frames = *frames
		}
	}
	out, err := scenario.Run(s, newTrace(level))
	if err != nil {
		return err
	}
	return writeOutcome(w, format, out)
}

// writeScenarioYAML marshals a scenario to YAML and writes it to w.
func writeScenarioYAML(w io.Writer, s *scenario.Scenario) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}

func init() {
	for _, c := range []*cobra.Command{scenarioRunCmd, scenarioShowCmd} {
		c.Flags().StringVar(&scenarioFile, "file", "", "Path to a YAML scenario file")
		c.Flags().StringVar(&scenarioPreset, "preset", "", "Built-in scenario name (see 'memsim scenario presets')")
	}
	scenarioRunCmd.Flags().IntVar(&scenarioFrames, "frames", 3, "Override the scenario's frame count")

	scenarioCmd.AddCommand(scenarioRunCmd)
	scenarioCmd.AddCommand(scenarioPresetsCmd)
	scenarioCmd.AddCommand(scenarioShowCmd)

	rootCmd.AddCommand(scenarioCmd)
}
