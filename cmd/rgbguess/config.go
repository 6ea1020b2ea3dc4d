package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rgb-guess/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it as ~/.rgbguess/configs/colors.yaml or ./configs/colors.yaml and
edit the keys you want to change, or pass any file with --config.

Examples:
  rgbguess config > ~/.rgbguess/configs/colors.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}
