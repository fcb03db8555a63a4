package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notificationsIface   = "org.freedesktop.Notifications"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/vudia/internal/notify DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// AddMatchSignal adds a signal match rule
	AddMatchSignal(options ...dbus.MatchOption) error

	// Signal registers a channel to receive D-Bus signals
	Signal(ch chan<- *dbus.Signal)

	// Notify shows a notification, replacing replacesID when non-zero, and returns its server id.
	// Arguments follow org.freedesktop.Notifications.Notify; timeout is in milliseconds.
	Notify(appName string, replacesID uint32, icon, summary, body string, hints map[string]dbus.Variant, timeout int32) (uint32, error)

	// CloseNotification dismisses a notification by id
	CloseNotification(id uint32) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (DBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// AddMatchSignal adds a signal match rule
func (c *StdDBusClient) AddMatchSignal(options ...dbus.MatchOption) error {
	return c.conn.AddMatchSignal(options...)
}

// Signal registers a channel to receive D-Bus signals
func (c *StdDBusClient) Signal(ch chan<- *dbus.Signal) {
	c.conn.Signal(ch)
}

// Notify calls org.freedesktop.Notifications.Notify
func (c *StdDBusClient) Notify(appName string, replacesID uint32, icon, summary, body string, hints map[string]dbus.Variant, timeout int32) (uint32, error) {
	if hints == nil {
		hints = map[string]dbus.Variant{}
	}

	var id uint32
	obj := c.conn.Object(notificationsService, notificationsPath)
	err := obj.Call(notificationsIface+".Notify", 0,
		appName, replacesID, icon, summary, body,
		[]string{}, hints, timeout,
	).Store(&id)
	return id, err
}

// CloseNotification calls org.freedesktop.Notifications.CloseNotification
func (c *StdDBusClient) CloseNotification(id uint32) error {
	obj := c.conn.Object(notificationsService, notificationsPath)
	return obj.Call(notificationsIface+".CloseNotification", 0, id).Err
}
