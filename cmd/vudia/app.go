package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/genricoloni/vudia/internal/artwork"
	"github.com/genricoloni/vudia/internal/audio"
	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/config"
	"github.com/genricoloni/vudia/internal/display"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/engine"
	"github.com/genricoloni/vudia/internal/fetcher"
	"github.com/genricoloni/vudia/internal/library"
	"github.com/genricoloni/vudia/internal/notify"
	"github.com/genricoloni/vudia/internal/processor"
	"github.com/genricoloni/vudia/internal/wallpaper"
	"github.com/genricoloni/vudia/internal/web"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph shared by every command.
// The caller supplies the *zap.Logger.
var AppOptions = fx.Options(
	fx.Provide(
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		newStore,
		newAudioOutput,
		asAudioOutput,
		engine.New,
		asPlayer,
		fx.Annotate(fetcher.NewImageFetcher, fx.As(new(domain.Fetcher))),
		display.NewScreenResolution,
		fx.Annotate(processor.NewBackdropProcessor, fx.As(new(domain.Processor))),
		fx.Annotate(wallpaper.New, fx.As(new(domain.Wallpaper))),
		artwork.NewService,
		asArtworkSource,
		library.New,
		asPreferences,
		notify.NewNotifier,
		web.NewHandlers,
		web.NewServer,
	),
	fx.Invoke(registerHooks),
)

// zapEvents routes fx lifecycle events to the application logger
var zapEvents = fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log}
})

// newLogger creates the production logger of the daemon
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newFileLogger writes JSON logs to dir/vudia.log so they do not mix with the terminal UI
func newFileLogger(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, "vudia.log")

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// newStore loads the catalog. A missing file yields an empty catalog.
func newStore(logger *zap.Logger, cfg domain.Config) (*catalog.Store, error) {
	store, err := catalog.LoadFile(cfg.GetCatalogPath())
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Catalog file not found, starting with an empty catalog",
			zap.String("path", cfg.GetCatalogPath()))
		return catalog.New(nil)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog loaded", zap.Int("tracks", store.Len()))
	return store, nil
}

func newAudioOutput(logger *zap.Logger, cfg domain.Config) *audio.BeepOutput {
	return audio.NewBeepOutput(logger, fetcher.NewAudioFetcher(logger, cfg))
}

func asAudioOutput(o *audio.BeepOutput) domain.AudioOutput { return o }

func asPlayer(e *engine.Engine) domain.Player { return e }

func asArtworkSource(s *artwork.Service) domain.ArtworkSource { return s }

func asPreferences(l *library.Library) notify.Preferences { return l }

// registerHooks sets up application lifecycle hooks.
// Hooks stop in reverse order, so the engine releases the audio device last.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	eng *engine.Engine,
	art *artwork.Service,
	notifier *notify.Notifier,
) {
	if !audio.Available {
		logger.Warn("Audio playback is not available in this build")
	}

	lc.Append(fx.Hook{OnStart: eng.Start, OnStop: eng.Stop})
	lc.Append(fx.Hook{OnStart: art.Start, OnStop: art.Stop})
	lc.Append(fx.Hook{OnStart: notifier.Start, OnStop: notifier.Stop})
}

// registerServer starts the HTTP surface after the player is running
func registerServer(lc fx.Lifecycle, srv *web.Server) {
	lc.Append(fx.Hook{OnStart: srv.Start, OnStop: srv.Stop})
}
