// Package notify shows a desktop notification whenever a new track starts playing.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/genricoloni/vudia/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	appName         = "Vudia"
	fallbackIcon    = "audio-x-generic"
	expireTimeoutMs = 5000
	closedSignal    = notificationsIface + ".NotificationClosed"

	// Artwork renders after a debounce; the bubble's icon is patched once it lands
	artworkRetry    = 250 * time.Millisecond
	artworkAttempts = 12
)

// Preferences is the runtime switch the listener controls from the profile screen
type Preferences interface {
	NotificationsWanted() bool
}

// Notifier turns track changes into freedesktop notifications.
// A single bubble is kept and replaced on each change.
type Notifier struct {
	logger  *zap.Logger
	cfg     domain.Config
	player  domain.Player
	artwork domain.ArtworkSource
	prefs   Preferences
	dial    func() (DBusClient, error)

	mu        sync.Mutex
	running   bool
	cancel    context.CancelFunc
	conn      DBusClient
	lastID    uint32                  // Server id of the visible notification, zero when none
	lastTrack int                     // Track id of the last notification sent
	pending   domain.PlaybackSnapshot // Announced with the fallback icon, awaiting artwork
	attempts  int
	wg        sync.WaitGroup
}

// NewNotifier creates a notifier that connects to the session bus on start
func NewNotifier(logger *zap.Logger, cfg domain.Config, player domain.Player, artwork domain.ArtworkSource, prefs Preferences) *Notifier {
	return &Notifier{
		logger:  logger,
		cfg:     cfg,
		player:  player,
		artwork: artwork,
		prefs:   prefs,
		dial:    NewStdDBusClient,
	}
}

// Start connects to the notification server and begins following the player.
// A missing session bus disables notifications without failing startup.
func (n *Notifier) Start(ctx context.Context) error {
	if !n.cfg.NotificationsEnabled() {
		n.logger.Info("Desktop notifications disabled")
		return nil
	}

	n.mu.Lock()
	if n.running {
		n.mu.Unlock()
		return nil
	}
	n.mu.Unlock()

	conn, err := n.dial()
	if err != nil {
		n.logger.Warn("Session bus unavailable, notifications disabled", zap.Error(err))
		return nil
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(notificationsPath),
		dbus.WithMatchInterface(notificationsIface),
		dbus.WithMatchMember("NotificationClosed"),
	); err != nil {
		n.logger.Warn("Failed to watch closed notifications", zap.Error(err))
	}

	signals := make(chan *dbus.Signal, 10)
	conn.Signal(signals)

	loopCtx, cancel := context.WithCancel(context.Background())

	n.mu.Lock()
	n.conn = conn
	n.cancel = cancel
	n.running = true
	n.mu.Unlock()

	n.wg.Add(1)
	go n.run(loopCtx, n.player.Watch(loopCtx, 4), signals)

	n.logger.Info("Desktop notifications enabled")
	return nil
}

// Stop dismisses the visible notification and closes the bus connection
func (n *Notifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		return nil
	}
	n.running = false
	n.cancel()
	n.mu.Unlock()

	n.wg.Wait()

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.lastID != 0 {
		if err := n.conn.CloseNotification(n.lastID); err != nil {
			n.logger.Debug("Failed to dismiss notification", zap.Error(err))
		}
		n.lastID = 0
	}
	if err := n.conn.Close(); err != nil {
		n.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
	}

	n.logger.Info("Desktop notifications stopped")
	return nil
}

func (n *Notifier) run(ctx context.Context, snapshots <-chan domain.PlaybackSnapshot, signals <-chan *dbus.Signal) {
	defer n.wg.Done()

	var retry <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			n.handleSnapshot(snap)
			retry = n.retryTimer()

		case <-retry:
			n.refreshIcon()
			retry = n.retryTimer()

		case sig, ok := <-signals:
			if !ok {
				// The bus connection dropped; stop polling the closed channel
				n.logger.Debug("D-Bus signal channel closed")
				signals = nil
				continue
			}
			n.handleSignal(sig)
		}
	}
}

// handleSnapshot notifies when a track other than the last announced one is playing
func (n *Notifier) handleSnapshot(snap domain.PlaybackSnapshot) {
	if snap.Track == nil || !snap.IsPlaying {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if snap.Track.ID == n.lastTrack {
		return
	}
	n.pending = domain.PlaybackSnapshot{}
	if !n.prefs.NotificationsWanted() {
		n.logger.Debug("Notifications muted", zap.Int("track", snap.Track.ID))
		return
	}

	icon := fallbackIcon
	if art, ok := n.artwork.Artwork(snap.Track.ID); ok && art.Thumbnail != "" {
		icon = art.Thumbnail
	}

	id, err := n.conn.Notify(appName, n.lastID, icon, snap.Track.Title, body(snap), hints(), expireTimeoutMs)
	if err != nil {
		n.logger.Warn("Failed to send notification",
			zap.Int("track", snap.Track.ID),
			zap.Error(err))
		return
	}

	n.lastID = id
	n.lastTrack = snap.Track.ID
	if icon == fallbackIcon {
		n.pending = snap
		n.attempts = 0
	}
	n.logger.Debug("Notification sent",
		zap.Uint32("id", id),
		zap.Int("track", snap.Track.ID))
}

// retryTimer arms the artwork check while a bubble still shows the fallback icon
func (n *Notifier) retryTimer() <-chan time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending.Track == nil {
		return nil
	}
	return time.After(artworkRetry)
}

// refreshIcon replaces the visible bubble once the pending track's thumbnail exists
func (n *Notifier) refreshIcon() {
	n.mu.Lock()
	defer n.mu.Unlock()

	snap := n.pending
	if snap.Track == nil {
		return
	}
	if snap.Track.ID != n.lastTrack || n.lastID == 0 {
		n.pending = domain.PlaybackSnapshot{}
		return
	}

	art, ok := n.artwork.Artwork(snap.Track.ID)
	if !ok || art.Thumbnail == "" {
		n.attempts++
		if n.attempts >= artworkAttempts {
			n.logger.Debug("No artwork for notification", zap.Int("track", snap.Track.ID))
			n.pending = domain.PlaybackSnapshot{}
		}
		return
	}

	n.pending = domain.PlaybackSnapshot{}
	id, err := n.conn.Notify(appName, n.lastID, art.Thumbnail, snap.Track.Title, body(snap), hints(), expireTimeoutMs)
	if err != nil {
		n.logger.Warn("Failed to update notification icon",
			zap.Int("track", snap.Track.ID),
			zap.Error(err))
		return
	}
	n.lastID = id
}

func hints() map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"category":      dbus.MakeVariant("x-gnome.music"),
		"desktop-entry": dbus.MakeVariant("vudia"),
		"transient":     dbus.MakeVariant(true),
	}
}

// handleSignal forgets the bubble once the server reports it closed
func (n *Notifier) handleSignal(sig *dbus.Signal) {
	if sig.Name != closedSignal || len(sig.Body) < 1 {
		return
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if id == n.lastID {
		n.lastID = 0
	}
}

func body(snap domain.PlaybackSnapshot) string {
	return fmt.Sprintf("%s\n%d of %d", snap.Track.Artist, snap.Index+1, snap.CatalogSize)
}
