package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogMode selects where diagnostic logs go
type LogMode int

const (
	// LogCLI logs to stderr in verbose mode and nowhere otherwise
	LogCLI LogMode = iota
	// LogMCP logs to mcp.log in the cache directory when enabled, since
	// stdio belongs to the MCP protocol
	LogMCP
)

// NewLogger builds the diagnostic logger for the given mode
func NewLogger(config *Config, mode LogMode) (*zap.SugaredLogger, error) {
	var cfg zap.Config

	switch {
	case mode == LogMCP && config.MCPLogEnabled:
		if err := EnsureDirs(config.CacheDir); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{filepath.Join(config.CacheDir, "mcp.log")}
		cfg.ErrorOutputPaths = cfg.OutputPaths
	case mode == LogCLI && config.Verbose:
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		cfg.OutputPaths = []string{"stderr"}
	default:
		return zap.NewNop().Sugar(), nil
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

// NewLoggerOrNop is NewLogger falling back to a no-op logger on error
func NewLoggerOrNop(config *Config, mode LogMode) *zap.SugaredLogger {
	log, err := NewLogger(config, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return zap.NewNop().Sugar()
	}
	return log
}
