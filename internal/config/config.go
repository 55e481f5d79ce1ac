// Package config reads the calculator's ambient settings from the environment.
package config

import (
	"errors"
	"fmt"

	"simple-calculator/internal/logger"

	"github.com/rs/zerolog"
)

const (
	DefaultWindowWidth  = float32(900)
	DefaultWindowHeight = float32(900)
)

type Config struct {
	LogLevel     zerolog.Level
	LogFormat    logger.Format
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		LogFormat:    logger.ConsoleFormat,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load reads LOG_LEVEL, DEBUG and LOG_FORMAT through getenv. Unrecognised
// values keep their defaults; the returned error lists them so the caller
// can log it once a logger exists.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()
	var errs []error

	level, err := logger.ParseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level
	if getenv("DEBUG") == "1" {
		cfg.LogLevel = zerolog.DebugLevel
	}

	format, err := logger.ParseFormat(getenv("LOG_FORMAT"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_FORMAT: %w", err))
	}
	cfg.LogFormat = format

	return cfg, errors.Join(errs...)
}
