package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable
func TestAppGraphValidity(t *testing.T) {
	err := fx.ValidateApp(
		fx.Supply(zap.NewNop()),
		AppOptions,
		fx.Invoke(registerServer),
	)
	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	logger.Info("Test logger initialization")
}

func TestNewFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	logger, err := newFileLogger(dir)
	if err != nil {
		t.Fatalf("newFileLogger() error = %v", err)
	}
	logger.Info("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "vudia.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

// setupEnv points the configuration at a temporary catalog with one track
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.yaml")
	if err := catalog.WriteFile(catalogPath, []domain.Track{
		{ID: 1, Title: "Kesariya", Artist: "Arijit Singh", AudioURL: "/music/kesariya.mp3", Category: domain.CategoryBollywood},
	}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("VUDIA_CATALOG", catalogPath)
	t.Setenv("VUDIA_MUSIC_DIR", dir)
	t.Setenv("VUDIA_OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("VUDIA_HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("VUDIA_NOTIFICATIONS", "false")
	return dir
}

// TestEndToEndStartup starts and stops the daemon graph with a real catalog
func TestEndToEndStartup(t *testing.T) {
	setupEnv(t)

	var player domain.Player
	app := fx.New(
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		AppOptions,
		fx.Invoke(registerServer),
		fx.Populate(&player),
	)

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}

	snap := player.Snapshot()
	if snap.Track == nil || snap.Track.ID != 1 || snap.IsPlaying {
		t.Errorf("initial snapshot = %+v, want track 1 selected and paused", snap)
	}

	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}

func TestNewStore_MissingFile(t *testing.T) {
	setupEnv(t)
	t.Setenv("VUDIA_CATALOG", filepath.Join(t.TempDir(), "missing.yaml"))

	var store *catalog.Store
	app := fx.New(
		fx.NopLogger,
		fx.Supply(zap.NewNop()),
		AppOptions,
		fx.Populate(&store),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("graph error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("store has %d tracks, want an empty catalog", store.Len())
	}
}

func TestRunScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Arijit Singh - Kesariya.mp3", "Intro.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	out := filepath.Join(dir, "gen", "catalog.yaml")

	n, err := runScan(&ScanParams{Dir: dir, Output: out})
	if err != nil {
		t.Fatalf("runScan() error = %v", err)
	}
	if n != 2 {
		t.Errorf("runScan() = %d tracks, want 2", n)
	}

	store, err := catalog.LoadFile(out)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("catalog has %d tracks, want 2", store.Len())
	}
}
