package group

import (
	"github.com/spf13/cobra"
	"github.com/tkarvine/motiontidy/internal/analysis"
	"github.com/tkarvine/motiontidy/internal/conf"
)

// Command creates the group command for whole-dataset analysis.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Process motion files for every subject and session in the dataset",
		Long:  `Group level analysis: discover all sub-*/ses-* directories under the BIDS root and process each pair.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Output.File.Path != "" {
				settings.Output.File.Enabled = true
			}
			return analysis.GroupAnalysis(settings)
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags defines flags specific to the group command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", "", "Path to run report output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Type, "format", "f", "", "Run report format: table, csv")
}
