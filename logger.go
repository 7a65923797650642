package wordmark

import "log/slog"

const (
	logGroup = "wordmark"
)

var logger *slog.Logger

func init() {
	logger = slog.Default().WithGroup(logGroup)
}

// SetLogger replaces the package logger. Log records are grouped under "wordmark".
func SetLogger(log *slog.Logger) {
	logger = log.WithGroup(logGroup)
}
