// Package config collects the server settings from the environment.
package config

import (
	"strings"
	"time"

	"momentos/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

// Config holds runtime settings.
//
//   - Port: HTTP listen port.
//   - AssetsDir: directory served instead of the embedded web assets; empty uses the embedded copy.
//   - PhotosDir: gallery directory, relative to the assets root.
//   - LogLevel: trace, debug, info, warn or error.
//   - CORSOrigins: allowed origins for the API.
//   - WSWriteTimeout: how long one websocket frame may take before the page is dropped.
type Config struct {
	Port           string
	AssetsDir      string
	PhotosDir      string
	LogLevel       string
	CORSOrigins    []string
	WSWriteTimeout time.Duration
}

// Load reads the .env file (if any) and the process environment.
func Load() Config {
	if err := utils.LoadEnv(); err != nil {
		log.Warnf("Warning: failed to read .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() Config {
	return Config{
		Port:           utils.GetEnv("PORT", "3001"),
		AssetsDir:      utils.GetEnv("ASSETS_DIR", ""),
		PhotosDir:      strings.Trim(utils.GetEnv("PHOTOS_DIR", "img/momentos"), "/"),
		LogLevel:       strings.ToLower(utils.GetEnv("LOG_LEVEL", "info")),
		CORSOrigins:    utils.GetEnvList("CORS_ORIGINS", []string{"*"}),
		WSWriteTimeout: time.Duration(utils.GetEnvInt("WS_WRITE_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

// Level maps LogLevel onto fiber's log levels, defaulting to info.
func (c Config) Level() log.Level {
	switch c.LogLevel {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
