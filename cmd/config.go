package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/highlighter/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the highlighter config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the commented default config to path (default: .highlighter/config.yaml).

An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := localConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

var configSetColorCmd = &cobra.Command{
	Use:   "set-color SCOPE COLOR",
	Short: "Override the terminal color of a scope",
	Long: `Persist a hex foreground color for SCOPE under theme.colors in the config
file in use (or .highlighter/config.yaml). Comments in the file are kept.

Examples:
  highlighter config set-color keyword-control "#CBA6F7"
  highlighter config set-color comment "#6C7086" --config ~/.config/highlighter/config.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if err := config.SetColor(path, args[0], args[1]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "set %s = %s in %s\n", args[0], args[1], path)
		return err
	},
}

// configPath returns the file config edits go to.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			return used
		}
	}
	return localConfigPath
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configSetColorCmd)
	rootCmd.AddCommand(configCmd)
}
