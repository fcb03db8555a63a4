//go:build (linux && cgo) || windows || darwin

package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"
)

// Available indicates whether audio playback is supported in this build
const Available = true

const (
	speakerRate  = beep.SampleRate(44100)
	loadTimeout  = 2 * time.Minute
	resampleQual = 4
)

// BeepOutput plays MP3 sources through the system speaker
type BeepOutput struct {
	logger  *zap.Logger
	fetcher domain.Fetcher
	ended   endedSlot

	mu           sync.Mutex
	speakerReady bool
	ref          string
	streamer     beep.StreamSeekCloser
	format       beep.Format
	ctrl         *beep.Ctrl
	queued       bool   // ctrl is currently in the speaker mixer
	gen          uint64 // Bumped on every load; completion callbacks of older sources are dropped
}

// NewBeepOutput creates an output that reads sources through fetcher
func NewBeepOutput(logger *zap.Logger, fetcher domain.Fetcher) *BeepOutput {
	return &BeepOutput{
		logger:  logger,
		fetcher: fetcher,
	}
}

// Load decodes ref and makes it the current source, paused at the start.
// The previous source is stopped first, so a failed load leaves nothing loaded.
func (o *BeepOutput) Load(ref string) error {
	o.mu.Lock()
	o.stopLocked()
	o.gen++
	o.ref = ref
	gen := o.gen
	o.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	data, err := o.fetcher.Fetch(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", ref, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		// A newer Load or Close won the race
		_ = streamer.Close()
		return fmt.Errorf("load of %s superseded", ref)
	}
	o.streamer = streamer
	o.format = format
	o.wireLocked()

	o.logger.Debug("Source loaded",
		zap.String("ref", ref),
		zap.Int("sampleRate", int(format.SampleRate)),
		zap.Duration("duration", format.SampleRate.D(streamer.Len())))
	return nil
}

// Play starts or resumes the loaded source
func (o *BeepOutput) Play() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return ErrNotLoaded
	}

	if !o.speakerReady {
		if err := speaker.Init(speakerRate, speakerRate.N(time.Second/10)); err != nil {
			return fmt.Errorf("failed to open audio device: %w", err)
		}
		o.speakerReady = true
	}

	if !o.queued {
		gen := o.gen
		speaker.Play(beep.Seq(o.ctrl, beep.Callback(func() {
			// Runs on the speaker goroutine with the speaker locked
			go o.finished(gen)
		})))
		o.queued = true
	}

	speaker.Lock()
	o.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause halts playback, keeping the position
func (o *BeepOutput) Pause() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctrl == nil {
		return nil
	}
	speaker.Lock()
	o.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Seek moves the playback position, clamped to the source length
func (o *BeepOutput) Seek(position time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return ErrNotLoaded
	}

	n := o.format.SampleRate.N(position)
	n = max(0, min(n, o.streamer.Len()))

	speaker.Lock()
	err := o.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	// A finished source left the mixer; rebuild the chain so Play can queue it again
	if !o.queued {
		o.wireLocked()
	}
	return nil
}

// Position returns the elapsed time of the loaded source
func (o *BeepOutput) Position() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := o.streamer.Position()
	speaker.Unlock()
	return o.format.SampleRate.D(pos)
}

// Duration returns the total length of the loaded source
func (o *BeepOutput) Duration() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return 0
	}
	return o.format.SampleRate.D(o.streamer.Len())
}

// OnEnded registers the completion listener
func (o *BeepOutput) OnEnded(fn func()) (detach func()) {
	return o.ended.set(fn)
}

// Close stops playback and releases the source
func (o *BeepOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked()
	o.gen++
	if o.speakerReady {
		speaker.Clear()
	}
	return nil
}

// finished handles the end of the source loaded at generation gen
func (o *BeepOutput) finished(gen uint64) {
	o.mu.Lock()
	if gen != o.gen {
		o.mu.Unlock()
		return
	}
	o.queued = false
	ref := o.ref
	o.mu.Unlock()

	o.logger.Debug("Source finished", zap.String("ref", ref))
	o.ended.fire()
}

// wireLocked builds the ctrl chain over the current streamer, paused
func (o *BeepOutput) wireLocked() {
	var s beep.Streamer = o.streamer
	if o.format.SampleRate != speakerRate {
		s = beep.Resample(resampleQual, o.format.SampleRate, speakerRate, o.streamer)
	}
	o.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	o.queued = false
}

// stopLocked removes the current source from the mixer and closes it
func (o *BeepOutput) stopLocked() {
	if o.ctrl != nil {
		speaker.Lock()
		o.ctrl.Paused = true
		o.ctrl.Streamer = nil
		speaker.Unlock()
	}
	if o.streamer != nil {
		if err := o.streamer.Close(); err != nil {
			o.logger.Debug("Failed to close source", zap.Error(err))
		}
	}
	o.streamer = nil
	o.ctrl = nil
	o.queued = false
}
