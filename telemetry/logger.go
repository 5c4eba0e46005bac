package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger initialises the global slog logger with a JSON handler.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
