package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the application.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type Format string

const (
	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"
)

// ParseLevel maps the LOG_LEVEL vocabulary onto zerolog levels.
func ParseLevel(value string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", value)
	}
}

// ParseFormat accepts "console" (default) or "json".
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", ConsoleFormat:
		return ConsoleFormat, nil
	case JSONFormat:
		return JSONFormat, nil
	default:
		return ConsoleFormat, fmt.Errorf("unknown log format %q", value)
	}
}
