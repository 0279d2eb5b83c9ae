package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tkarvine/motiontidy/cmd/config"
	"github.com/tkarvine/motiontidy/cmd/group"
	"github.com/tkarvine/motiontidy/cmd/participant"
	"github.com/tkarvine/motiontidy/cmd/session"
	"github.com/tkarvine/motiontidy/internal/buildinfo"
	"github.com/tkarvine/motiontidy/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings, build *buildinfo.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "motiontidy",
		Short:   "Motion TSV normalizer for BIDS datasets",
		Long:    `motiontidy repairs and standardizes head-motion parameter TSV files in a BIDS dataset, one cleaned file pair per detected rest run.`,
		Version: fmt.Sprintf("%s (built %s)", build.Version(), build.BuildDate()),
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	// Add sub-commands to the root command.
	subcommands := []*cobra.Command{
		session.Command(settings),
		participant.Command(settings),
		group.Command(settings),
		config.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&settings.BIDS.Dir, "bids-dir", "b", viper.GetString("bids.dir"), "BIDS dataset root directory")
	rootCmd.PersistentFlags().StringVar(&settings.BIDS.Task, "task", viper.GetString("bids.task"), "Task label of the rest runs, without the 'task-' prefix")
	rootCmd.PersistentFlags().IntVar(&settings.Motion.FramesPerRun, "frames-per-run", viper.GetInt("motion.framesperrun"), "Timeseries frames constituting one scan run")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
