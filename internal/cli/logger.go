package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/lng-economics/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI
// overrides. An empty override keeps the configured value.
func initializeLogger(loggingConfig config.LoggingConfig, overrides config.LoggingConfig) (*zap.Logger, error) {
	// CLI overrides take precedence
	level := loggingConfig.Level
	if overrides.Level != "" {
		level = overrides.Level
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if overrides.Format != "" {
		format = overrides.Format
	}
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	outputFile := loggingConfig.OutputFile
	if overrides.OutputFile != "" {
		outputFile = overrides.OutputFile
	}
	if outputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(outputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		file, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", outputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{outputFile}
		zapConfig.ErrorOutputPaths = []string{outputFile}
	}

	return zapConfig.Build()
}
