// Package engine implements the playback engine: the single owner of the
// transport state and of the audio-output handle.
package engine

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

// state is the mutable playback state. It is only touched with Engine.mu held.
type state struct {
	index      int
	playing    bool
	shuffle    bool
	repeatMode domain.RepeatMode
}

// Engine owns transport truth and mode semantics and mediates every call to the
// audio-output handle. Observers read it through snapshots and subscriptions.
type Engine struct {
	logger *zap.Logger
	store  *catalog.Store
	out    domain.AudioOutput
	intn   func(n int) int // Random source for shuffle

	mu        sync.Mutex
	state     state
	published state  // Last state handed to observers
	seq       uint64 // Sequence number of the last published snapshot
	detach    func() // Detaches the ended listener from the handle

	subsMu  sync.RWMutex
	subs    []*subscriber
	nextSub int
}

// New creates a playback engine positioned on the first track, paused,
// with shuffle off and repeat off.
func New(logger *zap.Logger, store *catalog.Store, out domain.AudioOutput) *Engine {
	return &Engine{
		logger: logger,
		store:  store,
		out:    out,
		intn:   rand.IntN,
	}
}

// Start attaches the completion listener and loads the first track without playing it
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.detach = e.out.OnEnded(e.OnTrackEnded)

	if e.store.Len() == 0 {
		e.logger.Warn("Catalog is empty, playback disabled")
		return nil
	}

	track := e.store.At(e.state.index)
	if err := e.out.Load(track.AudioURL); err != nil {
		e.logger.Error("Failed to load initial track",
			zap.Int("track", track.ID),
			zap.String("audio", track.AudioURL),
			zap.Error(err))
	}

	e.logger.Info("Playback engine started",
		zap.Int("tracks", e.store.Len()),
		zap.String("current", track.Title))
	return nil
}

// Stop detaches the completion listener, pauses playback and releases the handle
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	if e.detach != nil {
		e.detach()
		e.detach = nil
	}
	if e.state.playing {
		e.state.playing = false
		e.pauseLocked()
	}
	snap, changed := e.commitLocked()
	e.mu.Unlock()

	if changed {
		e.publish(snap)
	}

	e.logger.Info("Playback engine stopped")
	return e.out.Close()
}

// Snapshot returns the current playback state
func (e *Engine) Snapshot() domain.PlaybackSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Position returns the elapsed time of the current track as reported by the handle
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store.Len() == 0 {
		return 0
	}
	return e.out.Position()
}

// Duration returns the length of the current track as reported by the handle
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.store.Len() == 0 {
		return 0
	}
	return e.out.Duration()
}

func (e *Engine) snapshotLocked() domain.PlaybackSnapshot {
	return domain.PlaybackSnapshot{
		Seq:         e.seq,
		Track:       e.store.At(e.state.index),
		Index:       e.state.index,
		CatalogSize: e.store.Len(),
		IsPlaying:   e.state.playing,
		IsShuffle:   e.state.shuffle,
		RepeatMode:  e.state.repeatMode,
	}
}

// commitLocked stamps a new snapshot if the state differs from the last published one
func (e *Engine) commitLocked() (domain.PlaybackSnapshot, bool) {
	if e.state == e.published {
		return domain.PlaybackSnapshot{}, false
	}
	e.published = e.state
	e.seq++
	return e.snapshotLocked(), true
}

// loadAndPlayLocked replaces the handle's source with the current track and
// starts it if the transport is playing. Failures are logged, never returned.
func (e *Engine) loadAndPlayLocked() {
	track := e.store.At(e.state.index)
	if err := e.out.Load(track.AudioURL); err != nil {
		e.logger.Error("Failed to load track",
			zap.Int("track", track.ID),
			zap.String("audio", track.AudioURL),
			zap.Error(err))
		// The handle must not keep sounding the previous track
		e.pauseLocked()
		return
	}
	if e.state.playing {
		e.playLocked()
	}
}

func (e *Engine) playLocked() {
	if err := e.out.Play(); err != nil {
		track := e.store.At(e.state.index)
		e.logger.Error("Playback failed to start",
			zap.Int("track", track.ID),
			zap.String("audio", track.AudioURL),
			zap.Error(err))
	}
}

func (e *Engine) pauseLocked() {
	if err := e.out.Pause(); err != nil {
		e.logger.Warn("Failed to pause playback", zap.Error(err))
	}
}
