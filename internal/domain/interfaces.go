package domain

import (
	"context"
	"time"
)

// AudioOutput is the single audio-output handle owned by the playback engine.
// No other component may call it.
//
//go:generate mockgen -destination=mocks/audio_output_mock.go -package=mocks github.com/genricoloni/vudia/internal/domain AudioOutput
type AudioOutput interface {
	// Load replaces the current source, stopping whatever was playing
	Load(ref string) error

	// Play starts or resumes the loaded source
	// Returns an error when playback cannot start (bad source, no device)
	Play() error

	// Pause halts playback, keeping the position
	Pause() error

	// Seek moves the playback position of the loaded source
	Seek(position time.Duration) error

	// Position returns the elapsed time of the loaded source
	Position() time.Duration

	// Duration returns the total length of the loaded source, zero if unknown
	Duration() time.Duration

	// OnEnded registers fn to be called when the loaded source finishes naturally.
	// Only one listener is kept; the returned function detaches it.
	OnEnded(fn func()) (detach func())

	// Close releases the output device
	Close() error
}

// Player is the observer-facing side of the playback engine.
// Observers read snapshots and send commands; they never touch the audio output.
//
//go:generate mockgen -destination=mocks/player_mock.go -package=mocks github.com/genricoloni/vudia/internal/domain Player
type Player interface {
	// Snapshot returns the current playback state
	Snapshot() PlaybackSnapshot

	// Subscribe registers fn for every state change and delivers the current state immediately
	Subscribe(fn func(PlaybackSnapshot)) (unsubscribe func())

	// Watch returns a coalescing channel of snapshots, closed when ctx is done
	Watch(ctx context.Context, buffer int) <-chan PlaybackSnapshot

	// Position returns the elapsed time of the current track
	Position() time.Duration

	// Duration returns the length of the current track, zero if unknown
	Duration() time.Duration

	SelectTrack(id int)
	TogglePlayback()
	Advance()
	Retreat()
	ToggleShuffle()
	CycleRepeatMode()
	Seek(position time.Duration)
}

// Fetcher defines the interface for retrieving media bytes
//
//go:generate mockgen -destination=mocks/fetcher_mock.go -package=mocks github.com/genricoloni/vudia/internal/domain Fetcher
type Fetcher interface {
	// Fetch reads a /music/ reference from disk or downloads an http(s) URL
	// Returns the raw bytes or an error
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// Processor renders the now-playing artwork from cover data
//
//go:generate mockgen -destination=mocks/processor_mock.go -package=mocks github.com/genricoloni/vudia/internal/domain Processor
type Processor interface {
	// Generate writes the backdrop and thumbnail for the named track to the output directory
	Generate(imgData []byte, name string) (Artwork, error)
}

// Wallpaper applies rendered backdrops as the desktop background
//
//go:generate mockgen -destination=mocks/wallpaper_mock.go -package=mocks github.com/genricoloni/vudia/internal/domain Wallpaper
type Wallpaper interface {
	// Enabled reports whether a background setter is configured and available
	Enabled() bool

	// SetWallpaper sets the desktop background to the image at imagePath
	SetWallpaper(ctx context.Context, imagePath string) error
}

// ArtworkSource exposes artwork rendered for catalog tracks
type ArtworkSource interface {
	// Artwork returns the rendered files for the given track, if any
	Artwork(trackID int) (Artwork, bool)

	// Current returns the artwork of the most recently rendered now-playing track
	Current() (Artwork, bool)
}

// Config defines the interface for application configuration
type Config interface {
	// GetCatalogPath returns the catalog file to load at startup
	GetCatalogPath() string

	// GetMusicDir returns the directory that /music/ references resolve against
	GetMusicDir() string

	// GetOutputDir returns the directory for generated artwork and logs
	GetOutputDir() string

	// GetHTTPAddr returns the listen address of the HTTP surface
	GetHTTPAddr() string

	// NotificationsEnabled reports whether desktop notifications are wanted
	NotificationsEnabled() bool

	// WallpaperEnabled reports whether the backdrop should become the desktop background
	WallpaperEnabled() bool
}
