package env

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger: text by default, JSON when
// configured, at the configured level (info when unrecognised).
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
