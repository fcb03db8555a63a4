package config

import (
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultCatalogPath = "catalog.yaml"
	defaultMusicDir    = "music"
	defaultOutputDir   = "/tmp/vudia"
	defaultHTTPAddr    = "127.0.0.1:8080"
)

// AppConfig holds application configuration
type AppConfig struct {
	logger        *zap.Logger
	catalogPath   string
	musicDir      string
	outputDir     string
	httpAddr      string
	notifications bool
	wallpaper     bool
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	cfg := &AppConfig{
		logger:      logger,
		catalogPath: expandPath(envOr("VUDIA_CATALOG", defaultCatalogPath)),
		musicDir:    expandPath(envOr("VUDIA_MUSIC_DIR", defaultMusicDir)),
		outputDir:   OutputDir(),
		httpAddr:    envOr("VUDIA_HTTP_ADDR", defaultHTTPAddr),
	}

	cfg.notifications = boolEnv(logger, "VUDIA_NOTIFICATIONS", true)
	cfg.wallpaper = boolEnv(logger, "VUDIA_WALLPAPER", false)

	logger.Info("Configuration loaded",
		zap.String("catalog", cfg.catalogPath),
		zap.String("musicDir", cfg.musicDir),
		zap.String("outputDir", cfg.outputDir),
		zap.String("httpAddr", cfg.httpAddr),
		zap.Bool("notifications", cfg.notifications),
		zap.Bool("wallpaper", cfg.wallpaper))

	return cfg
}

// OutputDir resolves the output directory without building a full configuration.
// The interactive UI needs it before a logger exists.
func OutputDir() string {
	return expandPath(envOr("VUDIA_OUTPUT_DIR", defaultOutputDir))
}

// boolEnv parses a boolean variable, keeping fallback when it is unset or invalid
func boolEnv(logger *zap.Logger, key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("Invalid boolean value, keeping default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Bool("default", fallback))
		return fallback
	}
	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetCatalogPath returns the catalog file to load at startup
func (c *AppConfig) GetCatalogPath() string {
	return c.catalogPath
}

// GetMusicDir returns the directory that /music/ references resolve against
func (c *AppConfig) GetMusicDir() string {
	return c.musicDir
}

// GetOutputDir returns the directory for generated artwork and logs
func (c *AppConfig) GetOutputDir() string {
	return c.outputDir
}

// GetHTTPAddr returns the listen address of the HTTP surface
func (c *AppConfig) GetHTTPAddr() string {
	return c.httpAddr
}

// NotificationsEnabled reports whether desktop notifications are wanted
func (c *AppConfig) NotificationsEnabled() bool {
	return c.notifications
}

// WallpaperEnabled reports whether the now-playing backdrop should become the desktop background
func (c *AppConfig) WallpaperEnabled() bool {
	return c.wallpaper
}
