// Package web exposes the player and library over a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP surface of the player
type Server struct {
	logger   *zap.Logger
	router   chi.Router
	server   *http.Server
	handlers *Handlers
}

// NewServer creates a server listening on the configured address
func NewServer(logger *zap.Logger, cfg domain.Config, handlers *Handlers) *Server {
	router := chi.NewRouter()

	s := &Server{
		logger:   logger,
		router:   router,
		handlers: handlers,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:        cfg.GetHTTPAddr(),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: /api/events holds the response open
		IdleTimeout: 60 * time.Second,
	}

	return s
}

// Handler returns the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	h := s.handlers

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/state", h.State)
		r.Get("/events", h.Events)

		r.Get("/tracks", h.Tracks)
		r.Get("/tracks/search", h.Search)
		r.Get("/tracks/{id}", h.Track)
		r.Post("/tracks/{id}/play", h.PlayTrack)
		r.Post("/tracks/{id}/like", h.ToggleLike)

		r.Get("/sections", h.Sections)
		r.Get("/artists", h.Artists)

		r.Route("/player", func(r chi.Router) {
			r.Post("/toggle", h.command(h.player.TogglePlayback))
			r.Post("/next", h.command(h.player.Advance))
			r.Post("/previous", h.command(h.player.Retreat))
			r.Post("/shuffle", h.command(h.player.ToggleShuffle))
			r.Post("/repeat", h.command(h.player.CycleRepeatMode))
			r.Post("/seek", h.Seek)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/", h.Playlists)
			r.Post("/", h.CreatePlaylist)
			r.Get("/{id}", h.Playlist)
			r.Delete("/{id}", h.DeletePlaylist)
			r.Post("/{id}/tracks", h.AddToPlaylist)
		})

		r.Get("/library/{view}", h.LibraryView)

		r.Get("/preferences", h.Preferences)
		r.Patch("/preferences", h.UpdatePreferences)
		r.Get("/profile", h.Profile)
		r.Put("/profile", h.UpdateProfile)

		r.Get("/artwork/current", h.CurrentArtwork)
		r.Get("/artwork/{id}/{kind}", h.ArtworkFile)
	})
}

// Start binds the listener and serves in the background
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info("HTTP server started", zap.String("addr", ln.Addr().String()))

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request through zap instead of the chi text logger
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("requestID", middleware.GetReqID(r.Context())))
		})
	}
}
