package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tkarvine/motiontidy/internal/conf"
)

// Command creates the config command for inspecting and saving the effective
// configuration.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  `Print the effective configuration, config file values merged with flag overrides, as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("error marshaling settings: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}

	cmd.AddCommand(saveCommand(settings))

	return cmd
}

// saveCommand creates the config save subcommand.
func saveCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Write the effective configuration to a file",
		Long:  `Write the effective configuration to the given path, or to the default user config location when no path is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				paths, err := conf.GetDefaultConfigPaths()
				if err != nil {
					return err
				}
				path = filepath.Join(paths[0], "config.yaml")
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("error creating config directory: %w", err)
			}
			if err := conf.SaveYAMLConfig(path, settings); err != nil {
				return err
			}

			cmd.Println("Configuration written to", path)
			return nil
		},
	}
}
