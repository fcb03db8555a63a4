package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFetcher_Download(t *testing.T) {
	tests := []struct {
		name           string
		accept         string
		contentType    string
		responseBody   []byte
		statusCode     int
		ctxFunc        func() (context.Context, context.CancelFunc)
		expectedError  string
		expectedLength int
	}{
		{
			name:           "Success - Valid Image",
			accept:         "image/",
			contentType:    "image/jpeg",
			responseBody:   []byte("fake-image-data"),
			statusCode:     http.StatusOK,
			expectedLength: 15,
		},
		{
			name:           "Success - Valid Audio",
			accept:         "audio/",
			contentType:    "audio/mpeg",
			responseBody:   []byte("fake-mp3"),
			statusCode:     http.StatusOK,
			expectedLength: 8,
		},
		{
			name:          "Error - 404 Not Found",
			accept:        "image/",
			contentType:   "image/jpeg",
			statusCode:    http.StatusNotFound,
			expectedError: "unexpected status code: 404",
		},
		{
			name:          "Error - Wrong Media Kind",
			accept:        "audio/",
			contentType:   "image/png",
			responseBody:  []byte("not-audio"),
			statusCode:    http.StatusOK,
			expectedError: "unexpected content type",
		},
		{
			name:          "Error - Response Too Large",
			accept:        "image/",
			contentType:   "image/png",
			responseBody:  []byte(strings.Repeat("a", _maxImageSize+1)),
			statusCode:    http.StatusOK,
			expectedError: "media exceeds size limit",
		},
		{
			name:           "Success - Exactly At Limit",
			accept:         "image/",
			contentType:    "image/png",
			responseBody:   []byte(strings.Repeat("a", _maxImageSize)),
			statusCode:     http.StatusOK,
			expectedLength: _maxImageSize,
		},
		{
			name:   "Error - Context Cancelled",
			accept: "image/",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			expectedError: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.responseBody)
			}))
			defer server.Close()

			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
			}
			defer cancel()

			f := newFetcher(zap.NewNop(), t.TempDir(), tt.accept, _maxImageSize, _imageTimeout)
			data, err := f.Fetch(ctx, server.URL)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.expectedLength {
				t.Errorf("expected data length %d, got %d", tt.expectedLength, len(data))
			}
		})
	}
}

func TestFetcher_Local(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Arijit Singh - Kesariya.mp3"), []byte("mp3-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newFetcher(zap.NewNop(), dir, "audio/", _maxAudioSize, _audioTimeout)

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "music ref", ref: "/music/Arijit Singh - Kesariya.mp3", want: "mp3-bytes"},
		{name: "escape attempt", ref: "/music/../secret.mp3", wantErr: ErrEscapesMusicDir},
		{name: "bare path", ref: "/etc/passwd", wantErr: ErrUnsupportedRef},
		{name: "missing file", ref: "/music/none.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := f.Fetch(context.Background(), tt.ref)
			if tt.want == "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got %q, want %q", data, tt.want)
			}
		})
	}
}

func TestFetcher_LocalTooLarge(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "long.mp3"), []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := newFetcher(zap.NewNop(), dir, "audio/", 9, _audioTimeout)
	if _, err := f.Fetch(context.Background(), "/music/long.mp3"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}

	f = newFetcher(zap.NewNop(), dir, "audio/", 10, _audioTimeout)
	if data, err := f.Fetch(context.Background(), "/music/long.mp3"); err != nil || len(data) != 10 {
		t.Errorf("expected full read at the limit, got %d bytes, %v", len(data), err)
	}
}

func TestFetcher_Timeouts(t *testing.T) {
	images := NewImageFetcher(zap.NewNop(), stubConfig{})
	audio := NewAudioFetcher(zap.NewNop(), stubConfig{})

	if images.client.Timeout != _imageTimeout {
		t.Errorf("image timeout = %v", images.client.Timeout)
	}
	if audio.client.Timeout <= images.client.Timeout {
		t.Errorf("audio timeout %v should exceed image timeout %v", audio.client.Timeout, images.client.Timeout)
	}
}

type stubConfig struct{}

func (stubConfig) GetCatalogPath() string     { return "catalog.yaml" }
func (stubConfig) GetMusicDir() string        { return "music" }
func (stubConfig) GetOutputDir() string       { return "/tmp/vudia-test" }
func (stubConfig) GetHTTPAddr() string        { return "127.0.0.1:0" }
func (stubConfig) NotificationsEnabled() bool { return false }
func (stubConfig) WallpaperEnabled() bool     { return false }
