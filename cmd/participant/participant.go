package participant

import (
	"github.com/spf13/cobra"
	"github.com/tkarvine/motiontidy/internal/analysis"
	"github.com/tkarvine/motiontidy/internal/conf"
)

// Command creates the participant command for participant level analysis.
func Command(settings *conf.Settings) *cobra.Command {
	var participantLabels []string
	var sessionLabels []string

	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Process motion files for selected participants",
		Long:  `Participant level analysis: process the given participant/session label combinations. Labels correspond to sub-<label> and ses-<label> and exclude the prefix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Output.File.Path != "" {
				settings.Output.File.Enabled = true
			}
			return analysis.ParticipantAnalysis(settings, participantLabels, sessionLabels)
		},
	}

	cmd.Flags().StringSliceVar(&participantLabels, "participant-label", nil, "Participant label(s) to analyze, without the 'sub-' prefix")
	cmd.Flags().StringSliceVar(&sessionLabels, "session-label", nil, "Session label(s) to analyze, without the 'ses-' prefix")
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", "", "Path to run report output directory")
	cmd.Flags().StringVarP(&settings.Output.File.Type, "format", "f", "", "Run report format: table, csv")

	return cmd
}
