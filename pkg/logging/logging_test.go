package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedDebug bool
	}{
		{name: "debug level", logLevel: "debug", expectedDebug: true},
		{name: "info level", logLevel: "info", expectedDebug: false},
		{name: "warn level", logLevel: "warn", expectedDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "gpucheck.log")

			if err := Init(tt.logLevel, logPath); err != nil {
				t.Fatalf("Init() error = %v", err)
			}

			InfoLogger.Info().Msg("info probe message")
			ErrorLogger.Error().Msg("error probe message")
			DebugLogger.Debug().Msg("debug probe message")

			data, err := os.ReadFile(logPath)
			if err != nil {
				t.Fatalf("Failed to read log file: %v", err)
			}
			logContent := string(data)

			if tt.logLevel != "warn" && !strings.Contains(logContent, "info probe message") {
				t.Errorf("info message not found in log file: %s", logContent)
			}
			if !strings.Contains(logContent, "error probe message") {
				t.Errorf("error message not found in log file: %s", logContent)
			}

			if tt.expectedDebug && !strings.Contains(logContent, "debug probe message") {
				t.Errorf("expected debug message in log file: %s", logContent)
			}
			if !tt.expectedDebug && strings.Contains(logContent, "debug probe message") {
				t.Errorf("unexpected debug message in log file: %s", logContent)
			}
		})
	}
}

func TestInitInvalidLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gpucheck.log")
	if err := Init("loud", logPath); err == nil {
		t.Error("Init() with invalid level should fail")
	}
}
