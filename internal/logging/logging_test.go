package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skill-stack/skillreg/internal/config"
)

func TestNewFromConfig_DefaultsToStderr(t *testing.T) {
	cfg := &config.Config{
		Logging: config.LoggingConfig{
			Level:  config.LogLevelInfo,
			Format: config.LogFormatText,
			File:   "", // No file
		},
	}

	logger, closer, err := NewFromConfig(cfg, "/tmp")
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer != nil {
		t.Error("Expected no closer when no file configured")
	}
	if logger == nil {
		t.Fatal("Expected logger to be non-nil")
	}
}

func TestNewFromConfig_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			LogsDir: "logs",
		},
		Logging: config.LoggingConfig{
			Level:  config.LogLevelDebug,
			Format: config.LogFormatJSON,
			File:   "skillreg.log",
		},
	}

	logger, closer, err := NewFromConfig(cfg, dir)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if closer == nil {
		t.Fatal("Expected a closer when file is configured")
	}
	defer closer.Close()

	logger.Debug("hello", "skill", "translate-text")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "skillreg.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "translate-text") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   config.LogLevel
		want slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarn, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithSkill(t *testing.T) {
	logger := WithSkill(NewForTest(), "humanize-ai-text")
	if logger == nil {
		t.Fatal("WithSkill returned nil")
	}
}
