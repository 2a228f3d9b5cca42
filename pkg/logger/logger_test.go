package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "", want: zapcore.InfoLevel},
		{level: "chatty", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &config.Config{Log: config.LogConfig{Level: tt.level}}
			l, err := New(cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(tt.want) {
				t.Fatalf("level %s should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Fatalf("level %s should be disabled", tt.want-1)
			}
		})
	}
}
