package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide JSON logger. With enableOTel the records are
// also exported through the global OTel logger provider.
func Init(level string, enableOTel bool) *slog.Logger {
	return initWithWriter(os.Stdout, level, enableOTel)
}

func initWithWriter(w io.Writer, level string, enableOTel bool) *slog.Logger {
	lvl := ParseLevel(level)
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})

	var handler slog.Handler = NewTraceContextHandler(jsonHandler)
	if enableOTel {
		handler = NewMultiHandler(handler, NewOTelHandler(lvl))
	}

	logger := slog.New(handler).With("service", "news-dashboard")
	slog.SetDefault(logger)
	GlobalContext = NewContextLogger(logger)

	return logger
}

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
