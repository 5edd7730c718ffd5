package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var ErrUnknownFormat = errors.New("unknown log format")

// CreateHandler creates a [slog.Handler] writing to w from level and format strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level := GetLevel(logLevel)

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat, "":
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.TextFormatter,
		}), nil
	case LogfmtFormat:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.LogfmtFormatter,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
	}
}

func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error", "fatal":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
