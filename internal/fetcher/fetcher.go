package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"go.uber.org/zap"
)

const (
	_maxImageSize = 10 * 1024 * 1024  // 10 MB
	_maxAudioSize = 100 * 1024 * 1024 // 100 MB

	_imageTimeout = 10 * time.Second
	_audioTimeout = 2 * time.Minute
)

var (
	// ErrUnsupportedRef is returned for references that are neither /music/ paths nor http(s) URLs
	ErrUnsupportedRef = errors.New("unsupported media reference")
	// ErrEscapesMusicDir is returned when a /music/ reference points outside the music directory
	ErrEscapesMusicDir = errors.New("reference escapes music directory")
	// ErrTooLarge is returned when the media exceeds the fetcher's size limit
	ErrTooLarge = errors.New("media exceeds size limit")
)

// Fetcher retrieves media bytes from the local music directory or over HTTP.
// Each instance accepts a single media kind (images or audio).
type Fetcher struct {
	logger   *zap.Logger
	client   *http.Client
	musicDir string
	accept   string // Content-Type prefix required for HTTP responses
	maxSize  int64
}

// NewImageFetcher creates a fetcher for cover artwork
func NewImageFetcher(logger *zap.Logger, cfg domain.Config) *Fetcher {
	return newFetcher(logger, cfg.GetMusicDir(), "image/", _maxImageSize, _imageTimeout)
}

// NewAudioFetcher creates a fetcher for track audio
func NewAudioFetcher(logger *zap.Logger, cfg domain.Config) *Fetcher {
	return newFetcher(logger, cfg.GetMusicDir(), "audio/", _maxAudioSize, _audioTimeout)
}

func newFetcher(logger *zap.Logger, musicDir, accept string, maxSize int64, timeout time.Duration) *Fetcher {
	return &Fetcher{
		logger:   logger,
		musicDir: musicDir,
		accept:   accept,
		maxSize:  maxSize,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch returns the bytes behind ref, which is either a /music/ path or an http(s) URL
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, catalog.WebPrefix):
		return f.readLocal(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return f.download(ctx, ref)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRef, ref)
	}
}

// Resolve maps a /music/ reference to a path inside the music directory
func (f *Fetcher) Resolve(ref string) (string, error) {
	rel := filepath.FromSlash(strings.TrimPrefix(ref, catalog.WebPrefix))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrEscapesMusicDir, ref)
	}
	return filepath.Join(f.musicDir, rel), nil
}

func (f *Fetcher) readLocal(ref string) ([]byte, error) {
	path, err := f.Resolve(ref)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	defer file.Close()

	data, err := f.readLimited(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read media file: %w", err)
	}

	f.logger.Debug("Media read from disk", zap.Int("bytes", len(data)), zap.String("path", path))
	return data, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "vudia/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, f.accept) {
		return nil, fmt.Errorf("unexpected content type %q, want %s*", ct, f.accept)
	}

	data, err := f.readLimited(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	f.logger.Debug("Media fetched successfully", zap.Int("bytes", len(data)), zap.String("url", url))
	return data, nil
}

// readLimited reads r fully, failing instead of truncating oversized media
func (f *Fetcher) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, f.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w of %d bytes", ErrTooLarge, f.maxSize)
	}
	return data, nil
}
