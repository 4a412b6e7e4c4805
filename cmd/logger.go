package cmd

import (
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger for the environment and exposes it through slog, which is
// what the rest of the service logs with. The returned func flushes buffered entries.
func NewLogger(cfg Config) (*slog.Logger, func(), error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.AppEnv == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapCfg.EncoderConfig.LevelKey = "severity"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.OutputPaths = []string{"stdout"}
		zapCfg.ErrorOutputPaths = []string{"stderr"}
	}
	zapCfg.Level = level

	zl, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	zl = zl.With(zap.String("service_name", "dispatch"), zap.String("env", cfg.AppEnv))

	logger := slog.New(zapslog.NewHandler(zl.Core()))
	return logger, func() { _ = zl.Sync() }, nil
}
