package logging

import (
	"log/slog"
	"os"
)

// StdoutHandler returns the stdout handler for the environment: readable
// text in development, JSON everywhere else for log ingestion.
func StdoutHandler(appEnv string) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if appEnv == "development" {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}

// Setup installs the stdout-only logger used during startup, before the
// database sink is available.
func Setup(appEnv string) {
	slog.SetDefault(slog.New(StdoutHandler(appEnv)))
}
