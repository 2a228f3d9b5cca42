package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

// New builds a zap logger: JSON production config in production, console
// development config otherwise. Unknown levels fall back to info.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg != nil && cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if cfg != nil && cfg.Log.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			level = zapcore.InfoLevel
		}
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
