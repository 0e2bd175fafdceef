package dmlog_test

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/dmark/internal/dmlog"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
		{"case insensitive Info", "Info", log.InfoLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := dmlog.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}

			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	logger := dmlog.Default()
	if logger == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel because it modifies global state.

	original := dmlog.Default()
	defer dmlog.SetDefault(original)

	testLogger := dmlog.New("info")
	dmlog.SetDefault(testLogger)

	dmlog.SetLevel("debug")
	if dmlog.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	dmlog.SetLevel("error")
	if dmlog.Default().GetLevel() != log.ErrorLevel {
		t.Error("SetLevel to error failed")
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel because it modifies global state.

	original := dmlog.Default()
	defer dmlog.SetDefault(original)

	newLogger := dmlog.New("error")
	dmlog.SetDefault(newLogger)

	if dmlog.Default() != newLogger {
		t.Error("SetDefault did not change the default logger")
	}
}
