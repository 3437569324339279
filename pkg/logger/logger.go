// Package logger builds the application's structured logger from configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"

	"github.com/killallgit/jamjot-api/pkg/config"
)

// New creates a logger from the logging section of the configuration.
func New(cfg config.LoggingConfig) (*log.Logger, error) {
	w, err := writer(cfg)
	if err != nil {
		return nil, err
	}

	level := log.InfoLevel
	if cfg.Level != "" {
		level, err = log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
		}
	}

	opts := log.Options{
		ReportTimestamp: true,
		ReportCaller:    cfg.EnableCaller,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Formatter:       formatter(cfg.Format),
	}
	return log.NewWithOptions(w, opts), nil
}

// Setup creates a logger and installs it as the package default so that
// log.Default() and the package-level helpers use it.
func Setup(cfg config.LoggingConfig) (*log.Logger, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	log.SetDefault(l)
	return l, nil
}

func formatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

func writer(cfg config.LoggingConfig) (io.Writer, error) {
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging.file_path is required when logging.output is file")
		}
		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported logging.output %q", cfg.Output)
	}
}
