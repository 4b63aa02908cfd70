package config_test

import (
	"testing"

	"github.com/m-mizutani/fetchbench/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name  string
		level string
		json  bool
	}{
		{
			name:  "debug level",
			level: "debug",
		},
		{
			name:  "info level",
			level: "info",
		},
		{
			name:  "warn level",
			level: "warn",
		},
		{
			name:  "error level",
			level: "error",
		},
		{
			name:  "unknown level falls back to info",
			level: "verbose",
		},
		{
			name:  "JSON format",
			level: "info",
			json:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level: tt.level,
				JSON:  tt.json,
			}

			result, err := logger.Configure()
			if err != nil {
				t.Fatalf("Configure() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("Configure() returned nil logger")
			}

			// Verify logger can be used at all levels
			result.Debug("debug message")
			result.Info("info message")
			result.Warn("warn message")
			result.Error("error message")
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	if len(flags) != 2 {
		t.Errorf("Flags() returned %d flags, want 2", len(flags))
	}

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	if !flagNames["log-level"] {
		t.Error("Missing log-level flag")
	}
	if !flagNames["log-json"] {
		t.Error("Missing log-json flag")
	}
}
