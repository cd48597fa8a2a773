package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-cfg/tree"
)

// Config keys read by ConfigFromView.
const (
	LevelKey  = "log_level"
	FormatKey = "log_format"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// ConfigFromView reads the logger settings through view, so a section without its own
// log_level inherits the one of an enclosing section. Non-string values are formatted.
func ConfigFromView(view *tree.View) LoggerConfig {
	return LoggerConfig{
		Level:  stringValue(view, LevelKey),
		Format: stringValue(view, FormatKey),
	}
}

func stringValue(view *tree.View, key string) string {
	value, ok := view.Lookup(key)
	if !ok || value == nil {
		return ""
	}

	if s, isString := value.(string); isString {
		return s
	}

	return fmt.Sprint(value)
}

// NewLogger creates a new slog.Logger writing to w. The handler is JSON unless the format
// is "text"; the level defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// SetDefault creates a logger like NewLogger and installs it as the slog default.
func SetDefault(config LoggerConfig, w io.Writer) *slog.Logger {
	logger := NewLogger(config, w)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
