package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestNewAppConfig(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name          string
		env           map[string]string
		catalog       string
		musicDir      string
		outputDir     string
		httpAddr      string
		notifications bool
		wallpaper     bool
	}{
		{
			name:          "Defaults",
			env:           map[string]string{},
			catalog:       defaultCatalogPath,
			musicDir:      defaultMusicDir,
			outputDir:     defaultOutputDir,
			httpAddr:      defaultHTTPAddr,
			notifications: true,
		},
		{
			name: "Overrides",
			env: map[string]string{
				"VUDIA_CATALOG":       "/srv/catalog.yaml",
				"VUDIA_MUSIC_DIR":     "/srv/music",
				"VUDIA_OUTPUT_DIR":    "/srv/out",
				"VUDIA_HTTP_ADDR":     ":9090",
				"VUDIA_NOTIFICATIONS": "false",
				"VUDIA_WALLPAPER":     "true",
			},
			catalog:       "/srv/catalog.yaml",
			musicDir:      "/srv/music",
			outputDir:     "/srv/out",
			httpAddr:      ":9090",
			notifications: false,
			wallpaper:     true,
		},
		{
			name: "Tilde Expansion",
			env: map[string]string{
				"VUDIA_MUSIC_DIR": "~/Music",
			},
			catalog:       defaultCatalogPath,
			musicDir:      filepath.Join(home, "Music"),
			outputDir:     defaultOutputDir,
			httpAddr:      defaultHTTPAddr,
			notifications: true,
		},
		{
			name: "Invalid Bool Keeps Default",
			env: map[string]string{
				"VUDIA_NOTIFICATIONS": "maybe",
				"VUDIA_WALLPAPER":     "sometimes",
			},
			catalog:       defaultCatalogPath,
			musicDir:      defaultMusicDir,
			outputDir:     defaultOutputDir,
			httpAddr:      defaultHTTPAddr,
			notifications: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"VUDIA_CATALOG", "VUDIA_MUSIC_DIR", "VUDIA_OUTPUT_DIR", "VUDIA_HTTP_ADDR", "VUDIA_NOTIFICATIONS", "VUDIA_WALLPAPER"} {
				t.Setenv(key, tt.env[key])
			}

			cfg := NewAppConfig(zap.NewNop())

			if got := cfg.GetCatalogPath(); got != tt.catalog {
				t.Errorf("catalog: want %s, got %s", tt.catalog, got)
			}
			if got := cfg.GetMusicDir(); got != tt.musicDir {
				t.Errorf("musicDir: want %s, got %s", tt.musicDir, got)
			}
			if got := cfg.GetOutputDir(); got != tt.outputDir {
				t.Errorf("outputDir: want %s, got %s", tt.outputDir, got)
			}
			if got := OutputDir(); got != tt.outputDir {
				t.Errorf("OutputDir(): want %s, got %s", tt.outputDir, got)
			}
			if got := cfg.GetHTTPAddr(); got != tt.httpAddr {
				t.Errorf("httpAddr: want %s, got %s", tt.httpAddr, got)
			}
			if got := cfg.NotificationsEnabled(); got != tt.notifications {
				t.Errorf("notifications: want %v, got %v", tt.notifications, got)
			}
			if got := cfg.WallpaperEnabled(); got != tt.wallpaper {
				t.Errorf("wallpaper: want %v, got %v", tt.wallpaper, got)
			}
		})
	}
}
