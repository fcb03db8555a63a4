package library

import "strings"

// Quality is the stream quality setting
type Quality string

const (
	QualityHigh   Quality = "High"
	QualityLow    Quality = "Low"
	QualityMedium Quality = "Medium"
)

// Next cycles High -> Low -> Medium -> High
func (q Quality) Next() Quality {
	switch q {
	case QualityHigh:
		return QualityLow
	case QualityLow:
		return QualityMedium
	default:
		return QualityHigh
	}
}

// Valid reports whether q is one of the known settings
func (q Quality) Valid() bool {
	switch q {
	case QualityHigh, QualityLow, QualityMedium:
		return true
	}
	return false
}

// Preferences are the settings shown on the profile screen
type Preferences struct {
	Quality       Quality `json:"quality"`
	DataSaver     bool    `json:"dataSaver"`
	Notifications bool    `json:"notifications"`
	DarkMode      bool    `json:"darkMode"`
}

// Profile is the listener's account card
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Region   string `json:"region"`
}

func defaultPreferences() Preferences {
	return Preferences{Quality: QualityHigh, Notifications: true, DarkMode: true}
}

func defaultProfile() Profile {
	return Profile{Username: "Guest User", Email: "guest@vudia.com", Region: "India"}
}

// Preferences returns the current settings
func (l *Library) Preferences() Preferences {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.prefs
}

// UpdatePreferences applies fn to the settings and returns the result
func (l *Library) UpdatePreferences(fn func(*Preferences)) Preferences {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.prefs)
	return l.prefs
}

// Profile returns the account card
func (l *Library) Profile() Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile
}

// UpdateProfile replaces the account card. Blank fields keep their previous value.
func (l *Library) UpdateProfile(p Profile) Profile {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v := strings.TrimSpace(p.Username); v != "" {
		l.profile.Username = v
	}
	if v := strings.TrimSpace(p.Email); v != "" {
		l.profile.Email = v
	}
	if v := strings.TrimSpace(p.Region); v != "" {
		l.profile.Region = v
	}
	return l.profile
}

// NotificationsWanted reports whether the listener currently wants desktop notifications
func (l *Library) NotificationsWanted() bool {
	return l.Preferences().Notifications
}
