package wallpaper

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

type stubConfig struct {
	wallpaper bool
}

func (s *stubConfig) GetCatalogPath() string     { return "catalog.yaml" }
func (s *stubConfig) GetMusicDir() string        { return "music" }
func (s *stubConfig) GetOutputDir() string       { return "/tmp/vudia-test" }
func (s *stubConfig) GetHTTPAddr() string        { return "127.0.0.1:0" }
func (s *stubConfig) NotificationsEnabled() bool { return false }
func (s *stubConfig) WallpaperEnabled() bool     { return s.wallpaper }

var testCommands = []command{
	{name: "tiling", binary: "tiling-bg", args: []string{pathPlaceholder}, preferred: func(getenv func(string) string) bool {
		return getenv("TILING") != ""
	}},
	{name: "generic", binary: "generic-bg", args: []string{"--fill", pathPlaceholder}},
	{name: "other", binary: "other-bg", args: []string{pathPlaceholder}},
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		want      string
		wantErr   error
	}{
		{
			name:      "Preferred Command Wins",
			env:       map[string]string{"TILING": "1"},
			installed: []string{"generic-bg", "tiling-bg"},
			want:      "tiling",
		},
		{
			name:      "Preferred Command Missing Falls Back",
			env:       map[string]string{"TILING": "1"},
			installed: []string{"other-bg"},
			want:      "other",
		},
		{
			name:      "No Hint Uses List Order",
			installed: []string{"other-bg", "generic-bg", "tiling-bg"},
			want:      "tiling",
		},
		{
			name:    "Nothing Installed",
			wantErr: ErrNoSetter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			lookPath := func(bin string) (string, error) {
				for _, b := range tt.installed {
					if b == bin {
						return "/usr/bin/" + bin, nil
					}
				}
				return "", errors.New("not found")
			}

			got, err := detect(zap.NewNop(), testCommands, getenv, lookPath)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("detect() error = %v, want %v", err, tt.wantErr)
			}
			if got.name != tt.want {
				t.Errorf("detect() = %q, want %q", got.name, tt.want)
			}
		})
	}
}

func TestSetter_SetWallpaper(t *testing.T) {
	var gotName string
	var gotArgs []string

	s := &Setter{
		logger: zap.NewNop(),
		cmd:    testCommands[1],
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotName, gotArgs = name, args
			return nil, nil
		},
	}

	if !s.Enabled() {
		t.Fatal("Enabled() = false with a detected command")
	}
	if err := s.SetWallpaper(context.Background(), "/tmp/out/backdrop-1.jpg"); err != nil {
		t.Fatalf("SetWallpaper() error = %v", err)
	}
	if gotName != "generic-bg" || !reflect.DeepEqual(gotArgs, []string{"--fill", "/tmp/out/backdrop-1.jpg"}) {
		t.Errorf("ran %s %v", gotName, gotArgs)
	}
}

func TestSetter_CommandFailure(t *testing.T) {
	s := &Setter{
		logger: zap.NewNop(),
		cmd:    testCommands[0],
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("no outputs\n"), errors.New("exit status 1")
		},
	}

	err := s.SetWallpaper(context.Background(), "/tmp/backdrop.jpg")
	if err == nil {
		t.Fatal("expected an error")
	}
	if want := "failed to set wallpaper with tiling: exit status 1 (output: no outputs)"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestNew_Disabled(t *testing.T) {
	s := New(zap.NewNop(), &stubConfig{wallpaper: false})
	if s.Enabled() {
		t.Error("Enabled() = true when the configuration disables wallpapers")
	}
	if err := s.SetWallpaper(context.Background(), "/tmp/x.jpg"); !errors.Is(err, ErrNoSetter) {
		t.Errorf("SetWallpaper() error = %v, want ErrNoSetter", err)
	}
}
