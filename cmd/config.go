// Package cmd implements the command-line interface for winutilz.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/winutilz/internal/config"
	"github.com/Norgate-AV/winutilz/internal/output"
)

// NewConfigFromFlags loads the environment configuration and applies any
// flag the user set explicitly on top of it.
func NewConfigFromFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags overrides cfg with changed flags. --logs never comes from the
// environment so it is always read.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if flagChanged(cmd, "verbose") {
		cfg.Verbose = getBoolFlag(cmd, "verbose")
	}

	if flagChanged(cmd, "output") {
		cfg.Output = output.Format(getStringFlag(cmd, "output"))
	}

	cfg.ShowLogs = getBoolFlag(cmd, "logs")
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}

func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		val, _ = cmd.PersistentFlags().GetString(name)
	}

	return val
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}

	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f.Changed
	}

	return false
}
