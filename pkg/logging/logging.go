// Package logging configures file-based structured logging for gpucheck.
//
// Diagnostics output goes to stdout for the user; the structured log is a
// separate channel for debugging the tool itself, written to a rotated
// file so repeated doctor runs don't grow it unbounded.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	DebugLogger zerolog.Logger
	InfoLogger  zerolog.Logger
	ErrorLogger zerolog.Logger
)

// Init sets up zerolog with lumberjack rotation. An empty logFilePath
// defaults to ~/.config/gpucheck/gpucheck.log.
func Init(logLevel string, logFilePath string) error {
	if logFilePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logFilePath = filepath.Join(homeDir, ".config", "gpucheck", "gpucheck.log")
	}

	// Expand the ~ to the user's home directory
	if strings.HasPrefix(logFilePath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logFilePath = filepath.Join(homeDir, logFilePath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return err
	}

	rotate := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    2,  // megabytes
		MaxBackups: 3,  // number of files
		MaxAge:     60, // days
		Compress:   false,
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	fileWriter := zerolog.MultiLevelWriter(rotate)

	log.Logger = zerolog.New(fileWriter).With().Timestamp().Logger()
	DebugLogger = log.Logger.Level(zerolog.DebugLevel)
	InfoLogger = log.Logger.Level(zerolog.InfoLevel)
	ErrorLogger = log.Logger.Level(zerolog.ErrorLevel)

	if logLevel == "debug" {
		DebugLogger.Printf("Logging to: %s\n", logFilePath)
	}

	return nil
}
