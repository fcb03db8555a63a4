package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/config"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/library"
	"github.com/genricoloni/vudia/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const stopTimeout = 10 * time.Second

// PlayParams holds parameters for the interactive player
type PlayParams struct {
	Track int `short:"t" optional:"true" help:"Track id to start playing right away." default:"0"`
}

// ScanParams holds parameters for catalog generation
type ScanParams struct {
	Dir    string `pos:"true" help:"Directory with MP3 files named \"Artist - Title.mp3\"."`
	Output string `short:"o" optional:"true" help:"Catalog file to write." default:"catalog.yaml"`
}

func paramEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func serveCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "serve",
		Short: "Run the player headless with the HTTP API",
		Long: `Run the playback engine without a terminal UI. The JSON API and the
server-sent event stream listen on VUDIA_HTTP_ADDR (default 127.0.0.1:8080).`,
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			if err := runServe(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "serve: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func playCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:         "play",
		Short:       "Open the interactive terminal player",
		ParamEnrich: paramEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			if err := runPlay(params); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func scanCmd() *cobra.Command {
	return boa.CmdT[ScanParams]{
		Use:   "scan",
		Short: "Build a catalog file from a folder of MP3 files",
		Long: `Scan a directory for MP3 files and write a catalog document.

Examples:
  vudia scan ~/Music
  vudia scan -o /srv/vudia/catalog.yaml /srv/music`,
		ParamEnrich: paramEnricher(),
		RunFunc: func(params *ScanParams, cmd *cobra.Command, args []string) {
			n, err := runScan(params)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "scan: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %d tracks to %s\n", n, params.Output)
		},
	}.ToCobra()
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := fx.New(
		zapEvents,
		fx.Provide(newLogger),
		AppOptions,
		fx.Invoke(registerServer),
	)

	if err := app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	return app.Stop(stopCtx)
}

func runPlay(params *PlayParams) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	logger, err := newFileLogger(config.OutputDir())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var (
		player domain.Player
		store  *catalog.Store
		lib    *library.Library
	)
	app := fx.New(
		zapEvents,
		fx.Supply(logger),
		AppOptions,
		fx.Populate(&player, &store, &lib),
	)

	if err := app.Start(ctx); err != nil {
		return err
	}

	if params.Track > 0 {
		player.SelectTrack(params.Track)
	}
	runErr := tui.Run(ctx, logger, player, store, lib)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	return runErr
}

func runScan(params *ScanParams) (int, error) {
	tracks, err := catalog.ScanDir(params.Dir)
	if err != nil {
		return 0, err
	}
	if err := catalog.WriteFile(params.Output, tracks); err != nil {
		return 0, err
	}
	return len(tracks), nil
}
