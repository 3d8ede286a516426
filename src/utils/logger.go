package utils

import (
	"context"
	"os"

	"stockholdings/src/config"

	"github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey = contextKey("logger")

// NewLogger initializes a single logger that can log at multiple levels.
func NewLogger(logLevel logrus.Level, logToFile bool, filePath string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logLevel)

	if logToFile {
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			logger.Fatal("Could not open log file:", err)
		}
		logger.SetOutput(file)
	} else {
		logger.SetOutput(os.Stdout)
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

// NewLoggerFromConfig builds the service logger. An unknown level falls back
// to info.
func NewLoggerFromConfig(cfg config.LoggingConfig) *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	return NewLogger(level, cfg.ToFile, cfg.FilePath)
}

func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, entry)
}

// EntryFromContext returns the entry stored by WithLogger, if any.
func EntryFromContext(ctx context.Context) (*logrus.Entry, bool) {
	entry, ok := ctx.Value(loggerKey).(*logrus.Entry)
	return entry, ok
}

// LoggerFromContext returns the request scoped entry stored by WithLogger.
func LoggerFromContext(ctx context.Context) *logrus.Entry {
	entry, ok := EntryFromContext(ctx)
	if !ok {
		defaultLogger := logrus.New()
		defaultLogger.SetLevel(logrus.InfoLevel)
		defaultLogger.SetFormatter(&logrus.TextFormatter{})
		return logrus.NewEntry(defaultLogger)
	}
	return entry
}
