package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/memsim/memsim/sim/scenario"
)

var genConfig = scenario.DefaultGeneratorConfig()

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random scenario from a seed",
	Long:  "Generate a reproducible random scenario and write it as YAML to stdout. The output can be fed back through 'memsim scenario run --file'.",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := scenario.Generate(genConfig)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		if err := writeScenarioYAML(cmd.OutOrStdout(), s); err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
	},
}

func init() {
	d := scenario.DefaultGeneratorConfig()
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", d.Seed, "Seed for scenario generation")
	generateCmd.Flags().IntVar(&genConfig.BlockCount, "blocks", d.BlockCount, "Number of memory blocks (0 skips allocation)")
	generateCmd.Flags().IntVar(&genConfig.MinBlockSize, "block-min", d.MinBlockSize, "Minimum block size")
	generateCmd.Flags().IntVar(&genConfig.MaxBlockSize, "block-max", d.MaxBlockSize, "Maximum block size")
	generateCmd.Flags().IntVar(&genConfig.ProcessCount, "processes", d.ProcessCount, "Number of processes (0 skips allocation)")
	generateCmd.Flags().IntVar(&genConfig.MinProcessSize, "process-min", d.MinProcessSize, "Minimum process size")
	generateCmd.Flags().IntVar(&genConfig.MaxProcessSize, "process-max", d.MaxProcessSize, "Maximum process size")
	generateCmd.Flags().IntVar(&genConfig.PageCount, "pages", d.PageCount, "Reference string length (0 skips paging)")
	generateCmd.Flags().IntVar(&genConfig.MaxPage, "max-page", d.MaxPage, "Largest page number")
	generateCmd.Flags().IntVar(&genConfig.Frames, "frames", d.Frames, "Number of physical frames")

	rootCmd.AddCommand(generateCmd)
}
