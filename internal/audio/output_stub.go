//go:build !((linux && cgo) || windows || darwin)

package audio

import (
	"sync"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

// Available indicates whether audio playback is supported in this build.
// Audio requires cgo for the native sound libraries on Linux.
const Available = false

// BeepOutput accepts sources but cannot play them in builds without cgo
type BeepOutput struct {
	logger *zap.Logger
	ended  endedSlot

	mu  sync.Mutex
	ref string
}

// NewBeepOutput creates a silent output
func NewBeepOutput(logger *zap.Logger, fetcher domain.Fetcher) *BeepOutput {
	return &BeepOutput{logger: logger}
}

// Load records ref as the current source
func (o *BeepOutput) Load(ref string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ref = ref
	return nil
}

// Play always fails: there is no audio device
func (o *BeepOutput) Play() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ref == "" {
		return ErrNotLoaded
	}
	return ErrUnavailable
}

// Pause is a no-op
func (o *BeepOutput) Pause() error { return nil }

// Seek is a no-op
func (o *BeepOutput) Seek(position time.Duration) error { return nil }

// Position returns 0
func (o *BeepOutput) Position() time.Duration { return 0 }

// Duration returns 0
func (o *BeepOutput) Duration() time.Duration { return 0 }

// OnEnded registers the completion listener; it never fires
func (o *BeepOutput) OnEnded(fn func()) (detach func()) {
	return o.ended.set(fn)
}

// Close is a no-op
func (o *BeepOutput) Close() error { return nil }
