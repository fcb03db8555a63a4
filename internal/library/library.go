// Package library keeps the listener's playlists and liked tracks.
// State lives in memory only and is lost on exit.
package library

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrEmptyName is returned when a playlist name is blank
	ErrEmptyName = errors.New("playlist name is empty")
	// ErrPlaylistNotFound is returned for unknown playlist ids
	ErrPlaylistNotFound = errors.New("playlist not found")
)

const defaultPlaylistCover = "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?w=500&auto=format&fit=crop&q=60"

// Playlist is a named collection of catalog tracks
type Playlist struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Cover    string    `json:"cover"`
	TrackIDs []int     `json:"trackIds"`
	Count    int       `json:"count"` // Displayed size; demo playlists start with a nominal count
}

// Library holds playlists and likes for the session
type Library struct {
	logger *zap.Logger

	mu        sync.RWMutex
	playlists []*Playlist
	likes     map[int]struct{}
	prefs     Preferences
	profile   Profile
}

// New creates a library seeded with the demo playlists
func New(logger *zap.Logger) *Library {
	return &Library{
		logger: logger,
		playlists: []*Playlist{
			{
				ID:    uuid.New(),
				Name:  "Road Trip 2024",
				Cover: "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=500&auto=format&fit=crop&q=60",
				Count: 42,
			},
			{
				ID:    uuid.New(),
				Name:  "Gym Hype",
				Cover: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=500&auto=format&fit=crop&q=60",
				Count: 18,
			},
		},
		likes:   make(map[int]struct{}),
		prefs:   defaultPreferences(),
		profile: defaultProfile(),
	}
}

// Playlists returns the playlists whose name contains filter, case-insensitively, newest first
func (l *Library) Playlists(filter string) []Playlist {
	l.mu.RLock()
	defer l.mu.RUnlock()

	needle := strings.ToLower(filter)
	matching := lo.Filter(l.playlists, func(p *Playlist, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
	return lo.Map(matching, func(p *Playlist, _ int) Playlist {
		return p.clone()
	})
}

// Playlist returns a single playlist by id
func (l *Library) Playlist(id uuid.UUID) (Playlist, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.find(id)
	if !ok {
		return Playlist{}, ErrPlaylistNotFound
	}
	return p.clone(), nil
}

// CreatePlaylist adds an empty playlist at the top of the list
func (l *Library) CreatePlaylist(name string) (Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Playlist{}, ErrEmptyName
	}

	p := &Playlist{
		ID:    uuid.New(),
		Name:  name,
		Cover: defaultPlaylistCover,
	}

	l.mu.Lock()
	l.playlists = append([]*Playlist{p}, l.playlists...)
	l.mu.Unlock()

	l.logger.Info("Playlist created", zap.String("id", p.ID.String()), zap.String("name", name))
	return p.clone(), nil
}

// DeletePlaylist removes a playlist
func (l *Library) DeletePlaylist(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.playlists, func(p *Playlist) bool { return p.ID == id })
	if idx < 0 {
		return ErrPlaylistNotFound
	}
	l.playlists = slices.Delete(l.playlists, idx, idx+1)

	l.logger.Info("Playlist deleted", zap.String("id", id.String()))
	return nil
}

// AddTrack appends a track to a playlist. Tracks already present are not added twice.
func (l *Library) AddTrack(id uuid.UUID, trackID int) (Playlist, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.find(id)
	if !ok {
		return Playlist{}, ErrPlaylistNotFound
	}
	if !slices.Contains(p.TrackIDs, trackID) {
		p.TrackIDs = append(p.TrackIDs, trackID)
		p.Count++
	}
	return p.clone(), nil
}

// ToggleLike flips the liked state of a track and returns the new state
func (l *Library) ToggleLike(trackID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.likes[trackID]; ok {
		delete(l.likes, trackID)
		return false
	}
	l.likes[trackID] = struct{}{}
	return true
}

// IsLiked reports whether the track is liked
func (l *Library) IsLiked(trackID int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.likes[trackID]
	return ok
}

func (l *Library) find(id uuid.UUID) (*Playlist, bool) {
	return lo.Find(l.playlists, func(p *Playlist) bool { return p.ID == id })
}

func (p *Playlist) clone() Playlist {
	c := *p
	c.TrackIDs = slices.Clone(p.TrackIDs)
	return c
}
