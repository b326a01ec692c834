// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultLogger *slog.Logger

// Options controls where logs go and how much is logged.
type Options struct {
	// ToStderr also writes logs to stderr. Stdout is never used since it
	// belongs to the pager.
	ToStderr bool

	// Level is one of debug, info, warn or error. Empty means info.
	Level string
}

// GetLogFilePath determines the path for the application log file based on XDG spec.
func GetLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	logDir := filepath.Join(stateDir, "opep")
	logFile := filepath.Join(logDir, "opep.log")
	return logFile, nil
}

// ParseLevel converts a level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", name)
	}
}

// setupLogging configures the default logger to write to the rotated log file
// and/or stderr.
func setupLogging(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var writers []io.Writer

	logFilePath, err := GetLogFilePath()
	if err != nil {
		// Continue without file logging if path fails
		fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
	} else {
		logDir := filepath.Dir(logFilePath)
		// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log directory %s: %v. File logging disabled.\n", logDir, err)
		} else {
			writers = append(writers, &lumberjack.Logger{
				Filename:   logFilePath,
				MaxSize:    5, // Megabytes before it rotates
				MaxBackups: 3,
				MaxAge:     28, // Days to keep old files
				Compress:   true,
			})
		}
	}

	if opts.ToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		// Nothing is worth printing to the terminal over the pager.
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	// Using JSON handler for structured logging consistency.
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
	return nil
}

// InitLogger initializes the logger. It should be called once at startup;
// helpers used before that fall back to a discarding logger.
func InitLogger(opts Options) error {
	if err := setupLogging(opts); err != nil {
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	return nil
}

// SetLogger replaces the default logger instance, mainly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
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
