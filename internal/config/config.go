// Package config reads the runtime settings from the environment (and an
// optional .env file) plus the page layout.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LayoutPath string
	Layout     Layout
	LogFile    string
	LogLevel   string
	Mouse      bool
}

// Load reads .env when present, then SCHOOL_* variables. Unset variables fall
// back to defaults; the layout defaults to the embedded one.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	get := func(key, def string) string {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
		return def
	}

	cfg := Config{
		LayoutPath: get("SCHOOL_LAYOUT", ""),
		LogFile:    get("SCHOOL_LOG_FILE", ""),
		LogLevel:   strings.ToLower(get("SCHOOL_LOG_LEVEL", "info")),
		Mouse:      true,
	}
	if v := get("SCHOOL_MOUSE", ""); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SCHOOL_MOUSE: %w", err)
		}
		cfg.Mouse = parsed
	}

	if cfg.LayoutPath == "" {
		cfg.Layout = DefaultLayout()
		return cfg, nil
	}
	layout, err := LoadLayout(cfg.LayoutPath)
	if err != nil {
		return Config{}, fmt.Errorf("load layout: %w", err)
	}
	cfg.Layout = layout
	return cfg, nil
}
