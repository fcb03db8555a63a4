// Package audio provides the audio-output handle driven by the playback engine.
package audio

import (
	"errors"
	"sync"
)

var (
	// ErrNotLoaded is returned by transport calls made before any source was loaded
	ErrNotLoaded = errors.New("no source loaded")
	// ErrUnavailable is returned when the build has no audio device support
	ErrUnavailable = errors.New("audio output unavailable in this build")
)

// endedSlot holds the single completion listener of an output
type endedSlot struct {
	mu    sync.Mutex
	fn    func()
	token uint64
}

// set installs fn, replacing any previous listener. The returned detach only
// clears the slot if fn is still the installed listener.
func (s *endedSlot) set(fn func()) (detach func()) {
	s.mu.Lock()
	s.token++
	token := s.token
	s.fn = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.token == token {
			s.fn = nil
		}
	}
}

func (s *endedSlot) fire() {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}
