package engine

import (
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

// mutate runs fn under the state lock and publishes the result.
// Transport operations are no-ops on an empty catalog.
func (e *Engine) mutate(op string, transport bool, fn func()) {
	e.mu.Lock()
	if transport && e.store.Len() == 0 {
		e.mu.Unlock()
		e.logger.Debug("Ignoring transport command on empty catalog", zap.String("op", op))
		return
	}
	fn()
	snap, changed := e.commitLocked()
	e.mu.Unlock()

	if changed {
		e.publish(snap)
	}
}

// SelectTrack jumps to the track with the given id and plays it.
// Unknown ids are ignored.
func (e *Engine) SelectTrack(id int) {
	e.mutate("select", true, func() {
		idx, ok := e.store.IndexOf(id)
		if !ok {
			e.logger.Debug("Ignoring unknown track id", zap.Int("track", id))
			return
		}

		wasPlaying := e.state.playing
		e.state.playing = true

		if idx != e.state.index {
			e.state.index = idx
			e.loadAndPlayLocked()
			return
		}
		if !wasPlaying {
			e.playLocked()
		}
	})
}

// TogglePlayback flips between playing and paused
func (e *Engine) TogglePlayback() {
	e.mutate("toggle", true, func() {
		e.state.playing = !e.state.playing
		if e.state.playing {
			e.playLocked()
		} else {
			e.pauseLocked()
		}
	})
}

// Advance moves to the next track according to the shuffle mode and plays it
func (e *Engine) Advance() {
	e.mutate("next", true, e.advanceLocked)
}

func (e *Engine) advanceLocked() {
	e.state.index = nextIndex(e.state.index, e.store.Len(), e.state.shuffle, e.intn)
	e.state.playing = true
	e.loadAndPlayLocked()
}

// Retreat moves to the linear previous track and plays it
func (e *Engine) Retreat() {
	e.mutate("previous", true, func() {
		e.state.index = prevIndex(e.state.index, e.store.Len())
		e.state.playing = true
		e.loadAndPlayLocked()
	})
}

// ToggleShuffle flips shuffle mode without changing the current track
func (e *Engine) ToggleShuffle() {
	e.mutate("shuffle", false, func() {
		e.state.shuffle = !e.state.shuffle
	})
}

// CycleRepeatMode steps through Off -> All -> One -> Off
func (e *Engine) CycleRepeatMode() {
	e.mutate("repeat", false, func() {
		e.state.repeatMode = e.state.repeatMode.Next()
	})
}

// OnTrackEnded handles the handle's completion signal.
// Repeat-one restarts the current track; every other mode advances.
func (e *Engine) OnTrackEnded() {
	e.mutate("ended", true, func() {
		if e.state.repeatMode != domain.RepeatOne {
			e.advanceLocked()
			return
		}

		e.state.playing = true
		if err := e.out.Seek(0); err != nil {
			e.logger.Warn("Failed to rewind track", zap.Error(err))
		}
		e.playLocked()
	})
}

// Seek moves the playback position of the current track
func (e *Engine) Seek(position time.Duration) {
	if position < 0 {
		position = 0
	}
	e.mutate("seek", true, func() {
		if err := e.out.Seek(position); err != nil {
			e.logger.Warn("Failed to seek",
				zap.Duration("position", position),
				zap.Error(err))
		}
	})
}
