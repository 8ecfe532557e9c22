package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		log := New(tt.level, "json")
		if !log.Core().Enabled(tt.expected) {
			t.Errorf("level %q: expected %s to be enabled", tt.level, tt.expected)
		}
		if tt.expected > zapcore.DebugLevel && log.Core().Enabled(tt.expected-1) {
			t.Errorf("level %q: expected %s to be disabled", tt.level, tt.expected-1)
		}
	}
}

func TestNewConsole(t *testing.T) {
	log := New("info", "console")
	log.Info("console logger works")
}
