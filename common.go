// ABOUTME: Shared run options and debug logging for the command line
// ABOUTME: Provides the opt-in debug log file used by every component

package main

import (
	"fmt"
	"log"
	"os"
)

const debugLogFile = "song-catalog-debug.log"

var debugLog *log.Logger

// RunOptions contains command-line options for a catalog run
type RunOptions struct {
	Dir          string
	ConfigPath   string // Empty uses config.GetConfigPath()
	DryRun       bool
	Watch        bool
	Audit        bool
	PlaylistPath string
	Threshold    int // Negative keeps the configured threshold
	DebugLog     bool
}

// SetupDebugLog initializes debug logging
func SetupDebugLog(filename string) error {
	if err := InitDebugLog(filename); err != nil {
		return fmt.Errorf("failed to initialize debug log: %w", err)
	}

	if isTTY(os.Stdout) {
		fmt.Printf("Debug logging enabled: %s\n", filename)
	}

	return nil
}

// InitDebugLog initializes debug logging
func InitDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	return nil
}

// debugf logs debug messages if enabled
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

// debugLogger adapts debugf to the tui.Logger interface
type debugLogger struct{}

func (debugLogger) Debugf(format string, args ...interface{}) {
	debugf(format, args...)
}

// isTTY checks if the given file is a terminal
func isTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}
