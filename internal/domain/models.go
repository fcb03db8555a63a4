package domain

// Category groups tracks by genre or source (e.g. "hollywood", "My Music")
type Category string

const (
	// CategoryBollywood tags Hindi film music
	CategoryBollywood Category = "bollywood"
	// CategoryImported tags tracks imported alongside the Bollywood set
	CategoryImported Category = "imported"
	// CategoryHollywood tags English film and pop music
	CategoryHollywood Category = "hollywood"
	// CategoryMyMusic tags tracks produced by a local folder scan
	CategoryMyMusic Category = "My Music"
)

// Track is a single playable song. Tracks are immutable once the catalog is loaded
// and are shared by pointer, never copied or mutated by consumers.
type Track struct {
	// ID is the unique, stable identifier of the track
	ID int `yaml:"id" json:"id"`
	// Title of the song
	Title string `yaml:"title" json:"title"`
	// Artist name
	Artist string `yaml:"artist" json:"artist"`
	// Cover is the URL or local path to the cover image
	Cover string `yaml:"cover" json:"cover"`
	// AudioURL is the URL or local path to the audio source
	AudioURL string `yaml:"audioUrl" json:"audioUrl"`
	// Category is the grouping tag used by the home sections
	Category Category `yaml:"category" json:"category"`
	// Lyrics is the ordered list of lyric lines, possibly empty
	Lyrics []string `yaml:"lyrics,omitempty" json:"lyrics,omitempty"`
	// Color is an optional display accent
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// RepeatMode controls what happens when a track ends
type RepeatMode int

const (
	// RepeatOff advances to the next track
	RepeatOff RepeatMode = iota
	// RepeatAll advances to the next track, wrapping around the catalog
	RepeatAll
	// RepeatOne restarts the current track
	RepeatOne
)

// Next returns the following mode in the cycle Off -> All -> One -> Off
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

func (m RepeatMode) String() string {
	switch m {
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "off"
	}
}

// PlaybackSnapshot is an immutable copy of the playback state handed to observers
type PlaybackSnapshot struct {
	// Seq increases by one for every published change
	Seq uint64 `json:"seq"`
	// Track is the selected track, nil when the catalog is empty
	Track *Track `json:"track"`
	// Index is the position of Track in the catalog
	Index int `json:"index"`
	// CatalogSize is the number of tracks available to the engine
	CatalogSize int `json:"catalogSize"`
	// IsPlaying reports whether the transport is playing
	IsPlaying bool `json:"isPlaying"`
	// IsShuffle reports whether shuffle is enabled
	IsShuffle bool `json:"isShuffle"`
	// RepeatMode is the current repeat setting
	RepeatMode RepeatMode `json:"repeatMode"`
}

// Empty reports whether there is nothing to play
func (s PlaybackSnapshot) Empty() bool {
	return s.CatalogSize == 0 || s.Track == nil
}

// TrackChanged reports whether s selects a different track than prev
func (s PlaybackSnapshot) TrackChanged(prev PlaybackSnapshot) bool {
	if s.Track == nil || prev.Track == nil {
		return s.Track != prev.Track
	}
	return s.Track.ID != prev.Track.ID
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}

// Artwork holds the files rendered from a track's cover
type Artwork struct {
	TrackID   int    `json:"trackId"`
	Backdrop  string `json:"backdrop"`  // Blurred full-screen backdrop (JPEG)
	Thumbnail string `json:"thumbnail"` // Square cover used as notification icon (PNG)
}
