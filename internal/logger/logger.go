// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger provides the application-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

var defaultLogger *slog.Logger

// getLogFilePath determines the path for the application log file under the XDG state directory.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "movie-manager", "app.log"), nil
}

// ParseLevel maps a config value (debug, info, warn, error) to a slog level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", s)
	}
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile() (*os.File, string, error) {
	logFilePath, err := getLogFilePath()
	if err != nil {
		return nil, "", err
	}
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, logFilePath, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, logFilePath, fmt.Errorf("opening log file: %w", err)
	}
	return file, logFilePath, nil
}

// InitLogger configures the default logger. Interactive sessions (the menu
// and the browser) own the terminal, so they only log to the file; one-shot
// commands also log to stderr.
func InitLogger(interactive bool, level slog.Level) {
	var writers []io.Writer

	// The file handle is left for the OS to close on exit.
	file, logFilePath, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up log file %s: %v. File logging disabled.\n", logFilePath, err)
	} else {
		writers = append(writers, file)
	}

	if !interactive {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		// Nothing to write to in interactive mode; don't scribble over the menu.
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	defaultLogger = slog.New(slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: level}))
	Debug("Logging configured.", "file", logFilePath, "stderr", !interactive, "level", level.String())
}

// SetLogger replaces the default logger instance, e.g. with a discard logger in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
