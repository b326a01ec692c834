// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"opep/internal/config"
	"opep/internal/logger"
	"opep/internal/pager"

	"github.com/spf13/cobra"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage opep configuration",
	Long: `Provides subcommands to show and change the opep configuration file.

Settings: ` + strings.Join(config.Keys, ", ") + `.
Command-line flags take precedence over the configuration file.`,
	// Replaces the root hook: a broken config file must not stop it from being fixed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.InitLogger(logger.Options{ToStderr: verboseFlag}); err != nil {
			errorColor.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range config.Keys {
			value, _ := loaded.Get(key)
			if value == "" {
				value = dimColor.Sprint(defaultDescription(key))
			}
			fmt.Fprintf(out, "%-10s %s\n", key, value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Sets a configuration value. An empty value resets the setting to its default:
opep config set pager ""`,
	Example:   "  opep config set pager builtin\n  opep config set style light\n  opep config set peps_dir ~/peps",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		configPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		// Start from the raw file so one bad setting can be replaced.
		loaded, err := config.LoadConfigFrom(configPath)
		if err != nil {
			logger.Warn("ignoring unreadable config file", "path", configPath, "error", err)
			loaded = config.Config{}
		}

		if err := loaded.Set(key, value); err != nil {
			return err
		}
		cmd.SilenceUsage = true
		if err := config.SaveConfigTo(configPath, loaded); err != nil {
			return err
		}
		logger.Info("config updated", "key", key, "value", value)

		if value == "" {
			successColor.Fprintf(cmd.OutOrStdout(), "%s reset to default.\n", key)
		} else {
			successColor.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		}
		return nil
	},
}

func defaultDescription(key string) string {
	switch key {
	case "pager":
		return "(default: $PAGER, less or more; \"" + pager.BuiltinName + "\" for the built-in pager)"
	case "style":
		return "(default: dark)"
	case "width":
		return "(default: terminal width)"
	case "peps_dir":
		return "(default: bundled PEPs)"
	case "log_level":
		return "(default: info)"
	}
	return ""
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
