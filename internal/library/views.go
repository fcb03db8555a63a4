package library

import (
	"errors"
	"fmt"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/samber/lo"
)

// ViewKind names a library detail screen
type ViewKind string

const (
	ViewLiked   ViewKind = "liked"
	ViewArtists ViewKind = "artists"
	ViewAlbums  ViewKind = "albums"
	ViewLocal   ViewKind = "local"
)

const (
	// DefaultLimit is how many rows a detail view shows before "load more"
	DefaultLimit = 20
	// PageSize is how many rows "load more" adds
	PageSize = 20
	// LocalLimit caps the local files view, which has no "load more"
	LocalLimit = 5
)

// Kinds lists the detail views in display order
var Kinds = []ViewKind{ViewLiked, ViewArtists, ViewAlbums, ViewLocal}

// ErrUnknownView is returned for view kinds outside Kinds
var ErrUnknownView = errors.New("unknown library view")

// Item is one row of a detail view
type Item struct {
	TrackID  int    `json:"trackId,omitempty"` // Zero for rows that are not tracks
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Cover    string `json:"cover"`
	Playable bool   `json:"playable"`
}

// View is a rendered detail screen
type View struct {
	Kind    ViewKind `json:"kind"`
	Title   string   `json:"title"`
	Items   []Item   `json:"items"`
	HasMore bool     `json:"hasMore"`
}

// Label returns the short name shown on the library grid
func (k ViewKind) Label() string {
	switch k {
	case ViewLiked:
		return "Liked"
	case ViewArtists:
		return "Artists"
	case ViewAlbums:
		return "Albums"
	case ViewLocal:
		return "Local"
	default:
		return string(k)
	}
}

// ParseViewKind validates a view name
func ParseViewKind(s string) (ViewKind, error) {
	k := ViewKind(s)
	if !lo.Contains(Kinds, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return k, nil
}

// View builds a detail screen showing at most limit rows
func (l *Library) View(store *catalog.Store, kind ViewKind, limit int) (View, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	switch kind {
	case ViewLiked:
		liked := lo.Filter(store.Tracks(), func(t *domain.Track, _ int) bool {
			return l.IsLiked(t.ID)
		})
		return page(kind, "Liked Songs", lo.Map(liked, trackItem), limit), nil

	case ViewArtists:
		artists := lo.Map(store.Artists(), func(a catalog.Artist, _ int) Item {
			return Item{Title: a.Name, Subtitle: fmt.Sprintf("%d tracks", a.Tracks), Cover: a.Cover}
		})
		return page(kind, "Artists", artists, limit), nil

	case ViewAlbums:
		albums := lo.Map(store.Tracks(), func(t *domain.Track, i int) Item {
			it := trackItem(t, i)
			it.Playable = false
			return it
		})
		return page(kind, "Albums", albums, limit), nil

	case ViewLocal:
		local := lo.Map(lo.Slice(store.Tracks(), 0, LocalLimit), func(t *domain.Track, i int) Item {
			it := trackItem(t, i)
			it.Title += " (Local)"
			return it
		})
		return View{Kind: kind, Title: "Local Files", Items: local}, nil

	default:
		return View{}, fmt.Errorf("%w: %q", ErrUnknownView, kind)
	}
}

func page(kind ViewKind, title string, items []Item, limit int) View {
	return View{
		Kind:    kind,
		Title:   title,
		Items:   lo.Slice(items, 0, limit),
		HasMore: len(items) > limit,
	}
}

func trackItem(t *domain.Track, _ int) Item {
	return Item{
		TrackID:  t.ID,
		Title:    t.Title,
		Subtitle: t.Artist,
		Cover:    t.Cover,
		Playable: true,
	}
}
