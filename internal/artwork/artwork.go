// Package artwork renders now-playing backdrops for the current track.
package artwork

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Service follows the player and renders artwork for each track it settles on.
// Rapid skipping is debounced so only the track the user stays on is rendered.
type Service struct {
	logger    *zap.Logger
	player    domain.Player
	fetcher   domain.Fetcher
	processor domain.Processor
	wallpaper domain.Wallpaper
	debounce  time.Duration

	mu      sync.RWMutex
	cache   map[int]domain.Artwork // Rendered artwork keyed by track id
	current int                    // Track id of the last rendered now-playing track

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates an artwork service
func NewService(logger *zap.Logger, player domain.Player, fetcher domain.Fetcher, processor domain.Processor, wallpaper domain.Wallpaper) *Service {
	return &Service{
		logger:    logger,
		player:    player,
		fetcher:   fetcher,
		processor: processor,
		wallpaper: wallpaper,
		debounce:  defaultDebounce,
		cache:     make(map[int]domain.Artwork),
	}
}

// Start launches the render loop in a goroutine and returns immediately
func (s *Service) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.runLoop(loopCtx, s.player.Watch(loopCtx, 1))

	s.logger.Info("Artwork service started")
	return nil
}

// Stop ends the render loop and waits for an in-flight render to finish
func (s *Service) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Info("Artwork service stopped")
	return nil
}

// Artwork returns the rendered files for the given track
func (s *Service) Artwork(trackID int) (domain.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	art, ok := s.cache[trackID]
	return art, ok
}

// Current returns the artwork of the most recently rendered now-playing track
func (s *Service) Current() (domain.Artwork, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	art, ok := s.cache[s.current]
	return art, ok
}

func (s *Service) runLoop(ctx context.Context, snapshots <-chan domain.PlaybackSnapshot) {
	defer close(s.done)

	timer := time.NewTimer(s.debounce)
	timer.Stop()

	var pending *domain.Track

	for {
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if snap.Track == nil || !snap.IsPlaying {
				continue
			}
			if s.isCurrent(snap.Track.ID) {
				pending = nil
				timer.Stop()
				continue
			}

			s.logger.Debug("Track change received, debouncing",
				zap.Int("track", snap.Track.ID),
				zap.String("title", snap.Track.Title))
			pending = snap.Track
			timer.Reset(s.debounce)

		case <-timer.C:
			if pending != nil {
				s.render(ctx, pending)
				pending = nil
			}
		}
	}
}

func (s *Service) isCurrent(trackID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, rendered := s.cache[trackID]
	return rendered && s.current == trackID
}

// render runs the fetch and compose pipeline for a single track
func (s *Service) render(ctx context.Context, track *domain.Track) {
	if art, ok := s.Artwork(track.ID); ok {
		s.setCurrent(track.ID, art)
		s.logger.Debug("Reusing rendered artwork", zap.Int("track", track.ID))
		s.applyWallpaper(ctx, art)
		return
	}

	if track.Cover == "" {
		s.logger.Warn("Track has no cover", zap.Int("track", track.ID), zap.String("title", track.Title))
		return
	}

	data, err := s.fetcher.Fetch(ctx, track.Cover)
	if err != nil {
		s.logger.Error("Failed to fetch cover",
			zap.Int("track", track.ID),
			zap.String("cover", track.Cover),
			zap.Error(err))
		return
	}

	art, err := s.processor.Generate(data, strconv.Itoa(track.ID))
	if err != nil {
		s.logger.Error("Failed to generate artwork", zap.Int("track", track.ID), zap.Error(err))
		return
	}
	art.TrackID = track.ID

	s.setCurrent(track.ID, art)
	s.logger.Info("Artwork updated",
		zap.Int("track", track.ID),
		zap.String("title", track.Title),
		zap.String("backdrop", art.Backdrop))
	s.applyWallpaper(ctx, art)
}

// applyWallpaper makes the backdrop the desktop background when enabled
func (s *Service) applyWallpaper(ctx context.Context, art domain.Artwork) {
	if s.wallpaper == nil || !s.wallpaper.Enabled() {
		return
	}
	if err := s.wallpaper.SetWallpaper(ctx, art.Backdrop); err != nil {
		s.logger.Error("Failed to set wallpaper", zap.Int("track", art.TrackID), zap.Error(err))
	}
}

func (s *Service) setCurrent(trackID int, art domain.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[trackID] = art
	s.current = trackID
}
