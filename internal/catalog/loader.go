package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genricoloni/vudia/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// WebPrefix is how scanned files are referenced; the audio layer maps it to the music dir
	WebPrefix     = "/music/"
	defaultColor  = "from-purple-900 to-black"
	unknownArtist = "Unknown Artist"
)

// Fallback covers for scanned tracks without a matching image
var placeholderCovers = []string{
	"https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?q=80&w=1000",
	"https://images.unsplash.com/photo-1493225255756-d9584f8606e9?q=80&w=1000",
	"https://images.unsplash.com/photo-1470225620780-dba8ba36b745?q=80&w=1000",
	"https://images.unsplash.com/photo-1514525253440-b393452e8d26?q=80&w=1000",
}

// fileFormat is the on-disk catalog document
type fileFormat struct {
	Songs []domain.Track `yaml:"songs"`
}

// LoadFile reads a catalog document. JSON documents are accepted as well.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog document
func Parse(data []byte) (*Store, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc.Songs)
}

// WriteFile stores tracks as a catalog document
func WriteFile(path string, tracks []domain.Track) error {
	data, err := yaml.Marshal(fileFormat{Songs: tracks})
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// ScanDir builds tracks from the MP3 files in dir.
// File names are expected as "Artist - Title.mp3"; a sibling image with the same
// base name becomes the cover.
func ScanDir(dir string) ([]domain.Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read music directory: %w", err)
	}

	files := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files[e.Name()] = true
		}
	}

	var tracks []domain.Track
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".mp3") {
			continue
		}

		base := strings.TrimSuffix(name, filepath.Ext(name))
		artist, title := splitName(base)
		id := len(tracks) + 1

		tracks = append(tracks, domain.Track{
			ID:       id,
			Title:    title,
			Artist:   artist,
			Cover:    findCover(base, files, id),
			AudioURL: WebPrefix + name,
			Category: domain.CategoryMyMusic,
			Color:    defaultColor,
			Lyrics:   []string{},
		})
	}
	return tracks, nil
}

// splitName parses "Artist - Title"
func splitName(base string) (artist, title string) {
	parts := strings.Split(base, " - ")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return unknownArtist, strings.TrimSpace(base)
}

func findCover(base string, files map[string]bool, id int) string {
	for _, ext := range []string{".jpg", ".jpeg", ".png"} {
		if files[base+ext] {
			return WebPrefix + base + ext
		}
	}
	return placeholderCovers[(id-1)%len(placeholderCovers)]
}
