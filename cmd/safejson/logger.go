package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the stderr logger used by the CLI
func newLogger(debug bool) (*zap.Logger, error) {
	logCfg := zap.NewDevelopmentConfig()

	logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logCfg.OutputPaths = []string{"stderr"}
	logCfg.ErrorOutputPaths = []string{"stderr"}

	logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logCfg.DisableStacktrace = true
	logCfg.EncoderConfig.EncodeCaller = nil

	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build config for logger: %v", err)
	}
	return logger, nil
}
