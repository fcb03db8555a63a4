package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	domainmocks "github.com/genricoloni/vudia/internal/domain/mocks"
	"github.com/genricoloni/vudia/internal/notify/mocks"
	"github.com/godbus/dbus/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubConfig struct {
	notifications bool
}

func (s *stubConfig) GetCatalogPath() string     { return "catalog.yaml" }
func (s *stubConfig) GetMusicDir() string        { return "music" }
func (s *stubConfig) GetOutputDir() string       { return "/tmp/vudia-test" }
func (s *stubConfig) GetHTTPAddr() string        { return "127.0.0.1:0" }
func (s *stubConfig) NotificationsEnabled() bool { return s.notifications }
func (s *stubConfig) WallpaperEnabled() bool     { return false }

type stubPrefs bool

func (s stubPrefs) NotificationsWanted() bool { return bool(s) }

type stubArtwork map[int]domain.Artwork

func (s stubArtwork) Artwork(id int) (domain.Artwork, bool) {
	art, ok := s[id]
	return art, ok
}

func (s stubArtwork) Current() (domain.Artwork, bool) {
	return domain.Artwork{}, false
}

func snapshot(id int, playing bool) domain.PlaybackSnapshot {
	return domain.PlaybackSnapshot{
		Track:       &domain.Track{ID: id, Title: "Kesariya", Artist: "Arijit Singh"},
		Index:       id - 1,
		CatalogSize: 3,
		IsPlaying:   playing,
	}
}

func TestNotifier_HandleSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockDBusClient)
		snaps     []domain.PlaybackSnapshot
		muted     bool
		wantID    uint32
		wantTrack int
	}{
		{
			name: "Playing track is announced with rendered thumbnail",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Notify(appName, uint32(0), "/tmp/cover-1.png", "Kesariya", "Arijit Singh\n1 of 3", gomock.Any(), int32(expireTimeoutMs)).
					Return(uint32(7), nil)
			},
			snaps:     []domain.PlaybackSnapshot{snapshot(1, true)},
			wantID:    7,
			wantTrack: 1,
		},
		{
			name: "Next track replaces previous bubble",
			setupMock: func(m *mocks.MockDBusClient) {
				gomock.InOrder(
					m.EXPECT().Notify(appName, uint32(0), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint32(7), nil),
					m.EXPECT().Notify(appName, uint32(7), fallbackIcon, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uint32(7), nil),
				)
			},
			snaps:     []domain.PlaybackSnapshot{snapshot(1, true), snapshot(2, true)},
			wantID:    7,
			wantTrack: 2,
		},
		{
			name:      "Paused and empty snapshots are ignored",
			setupMock: func(m *mocks.MockDBusClient) {},
			snaps:     []domain.PlaybackSnapshot{snapshot(1, false), {}},
		},
		{
			name: "Same track is announced once",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uint32(3), nil).Times(1)
			},
			snaps:     []domain.PlaybackSnapshot{snapshot(1, true), snapshot(1, false), snapshot(1, true)},
			wantID:    3,
			wantTrack: 1,
		},
		{
			name:      "Muted by the listener",
			setupMock: func(m *mocks.MockDBusClient) {},
			snaps:     []domain.PlaybackSnapshot{snapshot(1, true)},
			muted:     true,
		},
		{
			name: "Server error leaves state untouched",
			setupMock: func(m *mocks.MockDBusClient) {
				m.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uint32(0), errors.New("no server"))
			},
			snaps: []domain.PlaybackSnapshot{snapshot(1, true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockDBusClient(ctrl)
			tt.setupMock(client)

			n := NewNotifier(zap.NewNop(), &stubConfig{notifications: true}, nil,
				stubArtwork{1: {TrackID: 1, Thumbnail: "/tmp/cover-1.png"}}, stubPrefs(!tt.muted))
			n.conn = client

			for _, s := range tt.snaps {
				n.handleSnapshot(s)
			}

			if n.lastID != tt.wantID {
				t.Errorf("lastID: want %d, got %d", tt.wantID, n.lastID)
			}
			if n.lastTrack != tt.wantTrack {
				t.Errorf("lastTrack: want %d, got %d", tt.wantTrack, n.lastTrack)
			}
		})
	}
}

func TestNotifier_PatchesIconWhenArtworkArrives(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockDBusClient(ctrl)

	gomock.InOrder(
		client.EXPECT().Notify(appName, uint32(0), fallbackIcon, "Kesariya", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uint32(9), nil),
		client.EXPECT().Notify(appName, uint32(9), "/tmp/cover-1.png", "Kesariya", "Arijit Singh\n1 of 3", gomock.Any(), int32(expireTimeoutMs)).
			Return(uint32(9), nil),
	)

	art := stubArtwork{}
	n := NewNotifier(zap.NewNop(), &stubConfig{notifications: true}, nil, art, stubPrefs(true))
	n.conn = client

	n.handleSnapshot(snapshot(1, true))
	if n.retryTimer() == nil {
		t.Fatal("expected a retry while the fallback icon is shown")
	}

	// Not rendered yet
	n.refreshIcon()

	art[1] = domain.Artwork{TrackID: 1, Thumbnail: "/tmp/cover-1.png"}
	n.refreshIcon()
	n.refreshIcon()

	if n.retryTimer() != nil {
		t.Error("no retry expected once the icon is patched")
	}
}

func TestNotifier_IconRetryGivesUp(t *testing.T) {
	tests := []struct {
		name  string
		after func(n *Notifier)
	}{
		{
			name: "Artwork never rendered",
			after: func(n *Notifier) {
				for i := 0; i < artworkAttempts; i++ {
					n.refreshIcon()
				}
			},
		},
		{
			name: "Bubble closed by the user",
			after: func(n *Notifier) {
				n.handleSignal(&dbus.Signal{Name: closedSignal, Body: []interface{}{uint32(5), uint32(2)}})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockDBusClient(ctrl)
			client.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uint32(5), nil).Times(1)

			art := stubArtwork{}
			n := NewNotifier(zap.NewNop(), &stubConfig{notifications: true}, nil, art, stubPrefs(true))
			n.conn = client

			n.handleSnapshot(snapshot(1, true))
			tt.after(n)

			art[1] = domain.Artwork{TrackID: 1, Thumbnail: "/tmp/cover-1.png"}
			n.refreshIcon()
			if n.retryTimer() != nil {
				t.Error("expected retries to stop")
			}
		})
	}
}

func TestNotifier_RunIdlesAfterSignalsClose(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := NewNotifier(zap.New(core), &stubConfig{notifications: true}, nil, stubArtwork{}, stubPrefs(true))

	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan *dbus.Signal)
	close(signals)

	n.wg.Add(1)
	go n.run(ctx, make(chan domain.PlaybackSnapshot), signals)

	time.Sleep(100 * time.Millisecond)
	cancel()
	n.wg.Wait()

	if got := logs.FilterMessage("D-Bus signal channel closed").Len(); got != 1 {
		t.Errorf("closed signal channel handled %d times, want 1", got)
	}
}

func TestNotifier_HandleSignal(t *testing.T) {
	tests := []struct {
		name   string
		signal *dbus.Signal
		wantID uint32
	}{
		{
			name:   "Matching close resets id",
			signal: &dbus.Signal{Name: closedSignal, Body: []interface{}{uint32(9), uint32(2)}},
			wantID: 0,
		},
		{
			name:   "Other notification closed",
			signal: &dbus.Signal{Name: closedSignal, Body: []interface{}{uint32(4), uint32(2)}},
			wantID: 9,
		},
		{
			name:   "Unrelated signal",
			signal: &dbus.Signal{Name: notificationsIface + ".ActionInvoked", Body: []interface{}{uint32(9), "default"}},
			wantID: 9,
		},
		{
			name:   "Malformed body",
			signal: &dbus.Signal{Name: closedSignal, Body: []interface{}{"nine"}},
			wantID: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(zap.NewNop(), &stubConfig{}, nil, stubArtwork{}, stubPrefs(true))
			n.lastID = 9

			n.handleSignal(tt.signal)

			if n.lastID != tt.wantID {
				t.Errorf("want %d, got %d", tt.wantID, n.lastID)
			}
		})
	}
}

func TestNotifier_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockDBusClient(ctrl)
	player := domainmocks.NewMockPlayer(ctrl)

	snaps := make(chan domain.PlaybackSnapshot, 1)
	sent := make(chan struct{})

	client.EXPECT().AddMatchSignal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	client.EXPECT().Signal(gomock.Any())
	player.EXPECT().Watch(gomock.Any(), 4).Return((<-chan domain.PlaybackSnapshot)(snaps))
	client.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(string, uint32, string, string, string, map[string]dbus.Variant, int32) (uint32, error) {
			close(sent)
			return 11, nil
		})
	gomock.InOrder(
		client.EXPECT().CloseNotification(uint32(11)).Return(nil),
		client.EXPECT().Close().Return(nil),
	)

	n := NewNotifier(zap.NewNop(), &stubConfig{notifications: true}, player, stubArtwork{}, stubPrefs(true))
	n.dial = func() (DBusClient, error) { return client, nil }

	if err := n.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	snaps <- snapshot(2, true)
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}

	if err := n.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestNotifier_StartDegrades(t *testing.T) {
	tests := []struct {
		name string
		cfg  *stubConfig
		dial func() (DBusClient, error)
	}{
		{
			name: "Disabled by configuration",
			cfg:  &stubConfig{notifications: false},
			dial: func() (DBusClient, error) {
				t.Fatal("must not dial when disabled")
				return nil, nil
			},
		},
		{
			name: "No session bus",
			cfg:  &stubConfig{notifications: true},
			dial: func() (DBusClient, error) { return nil, errors.New("no bus") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(zap.NewNop(), tt.cfg, nil, stubArtwork{}, stubPrefs(true))
			n.dial = tt.dial

			if err := n.Start(context.Background()); err != nil {
				t.Fatalf("start should not fail: %v", err)
			}
			if err := n.Stop(context.Background()); err != nil {
				t.Fatalf("stop should not fail: %v", err)
			}
		})
	}
}
