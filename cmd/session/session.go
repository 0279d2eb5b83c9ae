package session

import (
	"github.com/spf13/cobra"
	"github.com/tkarvine/motiontidy/internal/analysis"
	"github.com/tkarvine/motiontidy/internal/conf"
)

// Command creates the session command for processing a single subject/session pair.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session [subject] [session]",
		Short: "Process motion files for one subject/session pair",
		Long:  `Process the motion TSV files of a single subject/session pair, e.g. 'motiontidy session sub-01 ses-01'. Labels are accepted with or without their entity prefix.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Output.File.Path != "" {
				settings.Output.File.Enabled = true
			}
			return analysis.SessionAnalysis(settings, args[0], args[1])
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the session command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", "", "Path to run report output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Type, "format", "f", "", "Run report format: table, csv")
}
