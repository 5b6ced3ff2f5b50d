package bootstrap

import (
	"log/slog"
	"os"
	"strings"

	"autoshop-backend/internal/pkg/config"
)

// SetupLogger installs the process-wide structured logger.
func SetupLogger(cfg config.Config) {
	level := parseLevel(cfg.Log.Level)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
