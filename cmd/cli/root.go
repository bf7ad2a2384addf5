// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"movie-manager/internal/config"
	"movie-manager/internal/display"
	"movie-manager/internal/logger"
	"movie-manager/internal/menu"
	"movie-manager/internal/movie"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	titleColor      = color.New(color.FgGreen)
	watchedColor    = color.New(color.FgYellow)
	toWatchColor    = color.New(color.FgRed)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

var (
	dataFileFlag string

	// Set up by PersistentPreRunE for every command.
	cfg      config.Config
	dataPath string

	releaseLock = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "mm",
	Short: "Movie Manager",
	Long: `Keeps a personal list of movies, each either "To Watch" or "Watched".

Run without a command to open the numbered menu. The list is stored one movie
per line in a plain text file (movies.txt in the current directory unless
configured otherwise in ~/.config/movie-manager/config.yaml).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := logger.ParseLevel(cfg.LogLevel) // validated by LoadConfig
		logger.InitLogger(isInteractive(cmd), level)
		applyColorMode(cfg.ColorMode())

		dataPath, err = resolveDataPath(cfg)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLockedLibrary()
		if err != nil {
			return err
		}
		d := selectDisplay(cmd.OutOrStdout())
		return menu.New(lib, cmd.InOrStdin(), d).Run()
	},
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	err := rootCmd.Execute()
	releaseLock()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFileFlag, "file", "f", "", "movie list file (overrides data_file from the config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(tuiCmd)
}

// isInteractive reports whether cmd takes over the terminal, in which case
// logs must not go to stderr.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

func applyColorMode(mode display.Mode) {
	switch mode {
	case display.ModeNever:
		color.NoColor = true
	case display.ModeAlways:
		color.NoColor = false
	}
}

func resolveDataPath(c config.Config) (string, error) {
	if dataFileFlag != "" {
		return config.ResolvePath(dataFileFlag)
	}
	return c.DataPath()
}

// openLockedLibrary locks the data file for the rest of the process and
// loads it. The lock is released by RunCLI. Only a lock held by another
// session is fatal; if the lock file cannot be created the library is opened
// unlocked and save failures surface per operation.
func openLockedLibrary() (*movie.Library, error) {
	unlock, err := movie.Lock(dataPath)
	if errors.Is(err, movie.ErrLocked) {
		return nil, err
	}
	if err != nil {
		logger.Warn("Continuing without data file lock", "path", dataPath, "error", err)
		return movie.OpenLibrary(dataPath)
	}
	releaseLock = func() {
		if err := unlock(); err != nil {
			logger.Warn("Failed to release data file lock", "path", dataPath, "error", err)
		}
		releaseLock = func() {}
	}

	lib, err := movie.OpenLibrary(dataPath)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// selectDisplay picks a terminal display for real stdout and a plain one
// for anything else.
func selectDisplay(w io.Writer) display.Display {
	if f, ok := w.(*os.File); ok {
		return display.Select(f, cfg.ColorMode(), !cfg.NoClear)
	}
	return display.NewPlain(w)
}
