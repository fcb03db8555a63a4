package tui

import (
	"fmt"
	"strings"

	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/library"
	"github.com/genricoloni/vudia/internal/navigation"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Drill-down screen kinds
const (
	screenSection  = "section"
	screenLibrary  = "library"
	screenPlaylist = "playlist"
	screenAccount  = "account"
	screenSettings = "settings"
	screenPolicy   = "policy"
	screenHelp     = "help"
)

// Row actions that are neither navigation nor playback
const (
	actionNewPlaylist   = "new-playlist"
	actionLoadMore      = "load-more"
	actionAddCurrent    = "add-current"
	actionQuality       = "quality"
	actionDataSaver     = "data-saver"
	actionNotifications = "notifications"
	actionTheme         = "theme"
	actionHelp0         = "help-0"
	actionHelp1         = "help-1"
)

// previewSize is how many titles a home section shows before "see all"
const previewSize = 3

var (
	helpQuestions = []string{"How to create playlist?", "Audio Quality?"}
	helpActions   = []string{actionHelp0, actionHelp1}
)

// row is one selectable line. Enter pushes, plays or runs an action, in that order.
type row struct {
	title    string
	subtitle string
	trackID  int
	push     *navigation.Screen
	action   string
}

func trackRow(t *domain.Track) row {
	return row{title: t.Title, subtitle: t.Artist, trackID: t.ID}
}

func pushRow(title, subtitle, kind, param string) row {
	return row{title: title, subtitle: subtitle, push: &navigation.Screen{Kind: kind, Param: param}}
}

func parsePlaylistID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid playlist id %q: %w", s, err)
	}
	return id, nil
}

// rows returns the selectable lines of the visible screen
func (m model) rows() []row {
	if screen, ok := m.shell.Current(); ok {
		return m.screenRows(screen)
	}

	switch m.shell.Active() {
	case navigation.TabHome:
		return lo.Map(m.store.Sections(), func(s catalog.Section, _ int) row {
			titles := lo.Map(lo.Slice(s.Tracks, 0, previewSize), func(t *domain.Track, _ int) string { return t.Title })
			return pushRow(s.Title, strings.Join(titles, " · "), screenSection, s.Title)
		})

	case navigation.TabLibrary:
		rows := lo.Map(library.Kinds, func(k library.ViewKind, _ int) row {
			return pushRow(k.Label(), "", screenLibrary, string(k))
		})
		for _, p := range m.library.Playlists("") {
			rows = append(rows, pushRow(p.Name, fmt.Sprintf("%d songs", p.Count), screenPlaylist, p.ID.String()))
		}
		return append(rows, row{title: "+ New Playlist", action: actionNewPlaylist})

	case navigation.TabSearch:
		return lo.Map(m.store.Search(m.query), func(t *domain.Track, _ int) row { return trackRow(t) })

	case navigation.TabMe:
		return []row{
			pushRow("Account Information", "", screenAccount, ""),
			pushRow("Settings & Privacy", "", screenSettings, ""),
			pushRow("Privacy Policy", "", screenPolicy, ""),
			pushRow("Help Centre", "", screenHelp, ""),
			{title: "Theme", subtitle: onOff(m.library.Preferences().DarkMode, "Dark", "Light"), action: actionTheme},
		}
	}
	return nil
}

func (m model) screenRows(screen navigation.Screen) []row {
	switch screen.Kind {
	case screenSection:
		section, ok := lo.Find(m.store.Sections(), func(s catalog.Section) bool { return s.Title == screen.Param })
		if !ok {
			return nil
		}
		return lo.Map(section.Tracks, func(t *domain.Track, _ int) row { return trackRow(t) })

	case screenLibrary:
		view, err := m.libraryView(screen.Param)
		if err != nil {
			return nil
		}
		rows := lo.Map(view.Items, func(it library.Item, _ int) row {
			r := row{title: it.Title, subtitle: it.Subtitle}
			if it.Playable {
				r.trackID = it.TrackID
			}
			return r
		})
		if view.HasMore {
			rows = append(rows, row{title: "Load more", action: actionLoadMore})
		}
		return rows

	case screenPlaylist:
		id, err := parsePlaylistID(screen.Param)
		if err != nil {
			return nil
		}
		p, err := m.library.Playlist(id)
		if err != nil {
			return nil
		}
		rows := lo.FilterMap(p.TrackIDs, func(trackID int, _ int) (row, bool) {
			t, ok := m.store.Get(trackID)
			if !ok {
				return row{}, false
			}
			return trackRow(t), true
		})
		return append(rows, row{title: "+ Add now playing", action: actionAddCurrent})

	case screenAccount:
		profile := m.library.Profile()
		return []row{
			{title: "Username", subtitle: profile.Username, action: "edit:username"},
			{title: "Email", subtitle: profile.Email, action: "edit:email"},
			{title: "Region", subtitle: profile.Region, action: "edit:region"},
		}

	case screenSettings:
		prefs := m.library.Preferences()
		return []row{
			{title: "Stream Quality", subtitle: string(prefs.Quality), action: actionQuality},
			{title: "Data Saver", subtitle: onOff(prefs.DataSaver, "On", "Off"), action: actionDataSaver},
			{title: "Notifications", subtitle: onOff(prefs.Notifications, "On", "Off"), action: actionNotifications},
		}

	case screenHelp:
		return []row{
			{title: helpQuestions[0], action: actionHelp0},
			{title: helpQuestions[1], action: actionHelp1},
		}
	}
	return nil
}

func (m model) libraryView(param string) (library.View, error) {
	kind, err := library.ParseViewKind(param)
	if err != nil {
		return library.View{}, err
	}
	return m.library.View(m.store, kind, m.viewLimit)
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}
