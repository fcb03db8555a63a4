// Package catalog holds the immutable, ordered list of tracks the player can select from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genricoloni/vudia/internal/domain"
	"github.com/samber/lo"
)

const (
	// SearchLimit caps the number of search results
	SearchLimit = 50
	// SectionSize caps the number of tracks shown per home section
	SectionSize = 10
)

// ErrDuplicateID is returned when two tracks share an id
var ErrDuplicateID = errors.New("duplicate track id")

// Store is an immutable, ordered catalog of tracks. It is safe for concurrent reads.
type Store struct {
	tracks []*domain.Track
	index  map[int]int // track id -> position
}

// New builds a store from tracks, preserving their order
func New(tracks []domain.Track) (*Store, error) {
	s := &Store{
		tracks: make([]*domain.Track, 0, len(tracks)),
		index:  make(map[int]int, len(tracks)),
	}
	for i := range tracks {
		t := tracks[i]
		if _, exists := s.index[t.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		s.index[t.ID] = len(s.tracks)
		s.tracks = append(s.tracks, &t)
	}
	return s, nil
}

// Len returns the number of tracks
func (s *Store) Len() int {
	return len(s.tracks)
}

// At returns the track at position i, or nil when out of range
func (s *Store) At(i int) *domain.Track {
	if i < 0 || i >= len(s.tracks) {
		return nil
	}
	return s.tracks[i]
}

// IndexOf returns the position of the track with the given id
func (s *Store) IndexOf(id int) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Get returns the track with the given id
func (s *Store) Get(id int) (*domain.Track, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.tracks[i], true
}

// Tracks returns all tracks in catalog order
func (s *Store) Tracks() []*domain.Track {
	return append([]*domain.Track(nil), s.tracks...)
}

// Search matches the query against titles and artists, case-insensitively.
// An empty query matches nothing; whitespace is matched literally.
func (s *Store) Search(query string) []*domain.Track {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}
	matches := lo.Filter(s.tracks, func(t *domain.Track, _ int) bool {
		return strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Artist), q)
	})
	return lo.Slice(matches, 0, SearchLimit)
}

// ByCategory returns every track tagged with one of the given categories
func (s *Store) ByCategory(categories ...domain.Category) []*domain.Track {
	return lo.Filter(s.tracks, func(t *domain.Track, _ int) bool {
		return lo.Contains(categories, t.Category)
	})
}

// Section is a titled row on the home screen
type Section struct {
	Title  string          `json:"title"`
	Tracks []*domain.Track `json:"tracks"`
}

// Sections returns the home screen rows. Empty rows are omitted.
func (s *Store) Sections() []Section {
	head := lo.Slice(s.tracks, 0, SectionSize)
	sections := []Section{
		{Title: "Recently Played", Tracks: head},
		{Title: "Trending Now", Tracks: head},
		{Title: "Bollywood Hits", Tracks: lo.Slice(s.ByCategory(domain.CategoryBollywood, domain.CategoryImported), 0, SectionSize)},
		{Title: "Hollywood Essentials", Tracks: lo.Slice(s.ByCategory(domain.CategoryHollywood), 0, SectionSize)},
	}
	return lo.Filter(sections, func(sec Section, _ int) bool {
		return len(sec.Tracks) > 0
	})
}

// Artist summarizes the tracks of one artist
type Artist struct {
	Name   string `json:"name"`
	Tracks int    `json:"tracks"`
	Cover  string `json:"cover"`
}

// Artists returns every artist once, in order of first appearance
func (s *Store) Artists() []Artist {
	names := lo.Uniq(lo.Map(s.tracks, func(t *domain.Track, _ int) string {
		return t.Artist
	}))
	return lo.Map(names, func(name string, _ int) Artist {
		first, _ := lo.Find(s.tracks, func(t *domain.Track) bool { return t.Artist == name })
		return Artist{
			Name:   name,
			Tracks: lo.CountBy(s.tracks, func(t *domain.Track) bool { return t.Artist == name }),
			Cover:  first.Cover,
		}
	})
}
