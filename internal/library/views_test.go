package library

import (
	"errors"
	"fmt"
	"testing"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

func newStore(t *testing.T, n int) *catalog.Store {
	t.Helper()
	tracks := make([]domain.Track, 0, n)
	for i := 1; i <= n; i++ {
		tracks = append(tracks, domain.Track{
			ID:     i,
			Title:  fmt.Sprintf("Song %d", i),
			Artist: fmt.Sprintf("Artist %d", (i-1)%3),
			Cover:  fmt.Sprintf("/music/%d.jpg", i),
		})
	}
	store, err := catalog.New(tracks)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return store
}

func TestLibrary_View(t *testing.T) {
	store := newStore(t, 45)

	tests := []struct {
		name      string
		kind      ViewKind
		limit     int
		likes     []int
		wantTitle string
		wantItems int
		wantMore  bool
		check     func(t *testing.T, v View)
	}{
		{
			name:      "albums first page",
			kind:      ViewAlbums,
			limit:     DefaultLimit,
			wantTitle: "Albums",
			wantItems: 20,
			wantMore:  true,
			check: func(t *testing.T, v View) {
				if v.Items[0].Playable {
					t.Error("album rows are not playable")
				}
			},
		},
		{
			name:      "albums after two load more",
			kind:      ViewAlbums,
			limit:     DefaultLimit + 2*PageSize,
			wantTitle: "Albums",
			wantItems: 45,
			wantMore:  false,
		},
		{
			name:      "default limit when unset",
			kind:      ViewAlbums,
			wantTitle: "Albums",
			wantItems: 20,
			wantMore:  true,
		},
		{
			name:      "artists",
			kind:      ViewArtists,
			limit:     DefaultLimit,
			wantTitle: "Artists",
			wantItems: 3,
			check: func(t *testing.T, v View) {
				if v.Items[0].Title != "Artist 0" || v.Items[0].Subtitle != "15 tracks" || v.Items[0].Cover != "/music/1.jpg" {
					t.Errorf("unexpected artist row: %+v", v.Items[0])
				}
			},
		},
		{
			name:      "local",
			kind:      ViewLocal,
			limit:     100,
			wantTitle: "Local Files",
			wantItems: LocalLimit,
			check: func(t *testing.T, v View) {
				if v.Items[0].Title != "Song 1 (Local)" || !v.Items[0].Playable {
					t.Errorf("unexpected local row: %+v", v.Items[0])
				}
			},
		},
		{
			name:      "liked in catalog order",
			kind:      ViewLiked,
			limit:     DefaultLimit,
			likes:     []int{30, 2},
			wantTitle: "Liked Songs",
			wantItems: 2,
			check: func(t *testing.T, v View) {
				if v.Items[0].TrackID != 2 || v.Items[1].TrackID != 30 {
					t.Errorf("unexpected order: %+v", v.Items)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := New(zap.NewNop())
			for _, id := range tt.likes {
				lib.ToggleLike(id)
			}

			v, err := lib.View(store, tt.kind, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Title != tt.wantTitle {
				t.Errorf("title: want %q, got %q", tt.wantTitle, v.Title)
			}
			if len(v.Items) != tt.wantItems {
				t.Errorf("items: want %d, got %d", tt.wantItems, len(v.Items))
			}
			if v.HasMore != tt.wantMore {
				t.Errorf("hasMore: want %v, got %v", tt.wantMore, v.HasMore)
			}
			if tt.check != nil {
				tt.check(t, v)
			}
		})
	}
}

func TestLibrary_ViewEmptyCatalog(t *testing.T) {
	store, _ := catalog.New(nil)
	lib := New(zap.NewNop())

	for _, kind := range Kinds {
		v, err := lib.View(store, kind, DefaultLimit)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if len(v.Items) != 0 || v.HasMore {
			t.Errorf("%s: expected empty view, got %+v", kind, v)
		}
	}
}

func TestParseViewKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseViewKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseViewKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseViewKind("podcasts"); !errors.Is(err, ErrUnknownView) {
		t.Errorf("expected ErrUnknownView, got %v", err)
	}
}
