// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"movie-manager/internal/config"
	"movie-manager/internal/display"
	"movie-manager/internal/logger"

	"github.com/spf13/cobra"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage movie-manager configuration",
	Long: `Provides subcommands to show and change the movie-manager configuration:
where the movie list is stored, when colors are used, whether the screen is
cleared between menus, and the log level.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		configPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Config file: %s\n", configPath)

		source := dimColor.Sprint("(default)")
		switch {
		case dataFileFlag != "":
			source = dimColor.Sprint("(from --file)")
		case cfg.DataFile != "":
			source = dimColor.Sprint("(from config)")
		}
		fmt.Fprintf(out, "Data file:   %s %s\n", identifierColor.Sprint(dataPath), source)
		fmt.Fprintf(out, "Color:       %s\n", identifierColor.Sprint(cfg.ColorMode()))
		fmt.Fprintf(out, "Clear:       %s\n", identifierColor.Sprint(strconv.FormatBool(!cfg.NoClear)))

		level, _ := logger.ParseLevel(cfg.LogLevel)
		fmt.Fprintf(out, "Log level:   %s\n", identifierColor.Sprint(strings.ToLower(level.String())))
		return nil
	},
}

var configSetDataFileCmd = &cobra.Command{
	Use:   "set-data-file <path>",
	Short: "Set where the movie list is stored",
	Long: `Sets the file the movie list is read from and written to.
Use an absolute path or a path starting with '~/' (e.g., '~/movies.txt').
To revert to the default (movies.txt in the current directory), set the path
to an empty string: mm config set-data-file ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if path != "" && !strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "~/") {
			return fmt.Errorf("path must be absolute or start with '~/'")
		}

		cfg.DataFile = path
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}

		if path == "" {
			successColor.Fprintf(cmd.OutOrStdout(), "Data file reset to default (%s).\n", config.DefaultDataFile)
		} else {
			successColor.Fprintf(cmd.OutOrStdout(), "Data file set to: %s\n", path)
		}
		return nil
	},
}

var configSetColorCmd = &cobra.Command{
	Use:       "set-color <auto|always|never>",
	Short:     "Set when colors are used",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(display.ModeAuto), string(display.ModeAlways), string(display.ModeNever)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := display.ParseMode(args[0])
		if err != nil {
			return err
		}

		cfg.Color = string(mode)
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Color mode set to: %s\n", mode)
		return nil
	},
}

var configSetClearCmd = &cobra.Command{
	Use:       "set-clear <true|false>",
	Short:     "Set whether the screen is cleared between menu screens",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"true", "false"},
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[0])
		if err != nil {
			return fmt.Errorf("expected true or false, got %q", args[0])
		}

		cfg.NoClear = !enabled
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Screen clearing set to: %t\n", enabled)
		return nil
	},
}

var configSetLogLevelCmd = &cobra.Command{
	Use:       "set-log-level <debug|info|warn|error>",
	Short:     "Set the log level",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"debug", "info", "warn", "error"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := logger.ParseLevel(args[0]); err != nil {
			return err
		}

		cfg.LogLevel = strings.ToLower(args[0])
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Log level set to: %s\n", cfg.LogLevel)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetDataFileCmd)
	configCmd.AddCommand(configSetColorCmd)
	configCmd.AddCommand(configSetClearCmd)
	configCmd.AddCommand(configSetLogLevelCmd)

	rootCmd.AddCommand(configCmd)
}
