// Package tui is the interactive terminal front end of the player.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/vudia/internal/catalog"
	"github.com/genricoloni/vudia/internal/cosmetic"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/library"
	"github.com/genricoloni/vudia/internal/navigation"
	"go.uber.org/zap"
)

// seekStep is how far [ and ] move the playback position
const seekStep = 10 * time.Second

type (
	snapshotMsg     domain.PlaybackSnapshot
	progressTickMsg time.Time
	lyricsTickMsg   time.Time
)

// inputMode says where typed text goes
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputPlaylist
	inputProfile
)

type model struct {
	logger  *zap.Logger
	player  domain.Player
	store   *catalog.Store
	library *library.Library
	events  <-chan domain.PlaybackSnapshot

	shell *navigation.Shell
	snap  domain.PlaybackSnapshot

	progress *cosmetic.Progress
	lyrics   *cosmetic.Lyrics

	cursor     int
	viewLimit  int       // Rows shown on a library detail view
	query      string    // Search tab text
	mode       inputMode // Where typed text goes
	input      string    // Text being typed for a playlist name or profile field
	inputField string    // Profile field being edited
	helpOpen   int       // Expanded help question, -1 for none
	status     string    // Transient message under the current screen
	width      int
	height     int
}

func newModel(logger *zap.Logger, player domain.Player, store *catalog.Store, lib *library.Library, events <-chan domain.PlaybackSnapshot) model {
	return model{
		logger:    logger,
		player:    player,
		store:     store,
		library:   lib,
		events:    events,
		shell:     navigation.New(),
		progress:  &cosmetic.Progress{},
		lyrics:    cosmetic.NewLyrics(nil),
		viewLimit: library.DefaultLimit,
		helpOpen:  -1,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.events), progressTickCmd(), lyricsTickCmd())
}

// waitForSnapshot reads one engine snapshot; Update re-arms it after each delivery
func waitForSnapshot(events <-chan domain.PlaybackSnapshot) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-events
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func progressTickCmd() tea.Cmd {
	return tea.Tick(cosmetic.ProgressInterval, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func lyricsTickCmd() tea.Cmd {
	return tea.Tick(cosmetic.LyricsInterval, func(t time.Time) tea.Msg {
		return lyricsTickMsg(t)
	})
}

func (m model) theme() theme {
	if m.library.Preferences().DarkMode {
		return darkTheme
	}
	return lightTheme
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m = m.applySnapshot(domain.PlaybackSnapshot(msg))
		return m, waitForSnapshot(m.events)

	case progressTickMsg:
		if m.snap.IsPlaying {
			m.progress.Tick()
		}
		return m, progressTickCmd()

	case lyricsTickMsg:
		if m.snap.IsPlaying {
			m.lyrics.Tick()
		}
		return m, lyricsTickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode != inputNone {
			return m.handleInput(msg), nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) applySnapshot(snap domain.PlaybackSnapshot) model {
	if snap.TrackChanged(m.snap) {
		m.progress.Reset()
		if snap.Track != nil {
			m.lyrics.Reset(snap.Track.Lyrics)
		} else {
			m.lyrics.Reset(nil)
		}
	}
	m.snap = snap
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "space":
		m.player.TogglePlayback()
	case "n":
		m.player.Advance()
	case "p":
		m.player.Retreat()
	case "s":
		m.player.ToggleShuffle()
	case "r":
		m.player.CycleRepeatMode()
	case "]":
		m.player.Seek(m.player.Position() + seekStep)
	case "[":
		m.player.Seek(max(m.player.Position()-seekStep, 0))
	case "l":
		if m.snap.Track != nil {
			m.library.ToggleLike(m.snap.Track.ID)
		}
	case "t":
		m.library.UpdatePreferences(func(p *library.Preferences) { p.DarkMode = !p.DarkMode })
	case "o":
		if m.snap.Track != nil {
			m.shell.OpenPlayer()
		}
	case "tab":
		m.shell.ClosePlayer()
		m.shell.Next()
		m = m.resetScreen()
	case "shift+tab":
		m.shell.ClosePlayer()
		m.shell.Prev()
		m = m.resetScreen()
	case "1", "2", "3", "4":
		m.shell.ClosePlayer()
		m.shell.Select(navigation.Tabs[msg.String()[0]-'1'])
		m = m.resetScreen()
	case "esc", "backspace":
		if m.shell.PlayerOpen() {
			m.shell.ClosePlayer()
		} else if m.shell.Back() {
			m = m.resetScreen()
		}
	case "/":
		if m.shell.Active() == navigation.TabSearch {
			m.mode = inputSearch
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case "enter":
		if !m.shell.PlayerOpen() {
			return m.activate()
		}
	}

	return m, nil
}

func (m model) resetScreen() model {
	m.cursor = 0
	m.viewLimit = library.DefaultLimit
	m.helpOpen = -1
	return m
}

func (m model) handleInput(msg tea.KeyMsg) model {
	text := &m.input
	if m.mode == inputSearch {
		text = &m.query
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.mode = inputNone
		m.input = ""
	case tea.KeyEnter:
		m = m.commitInput()
	case tea.KeyBackspace:
		if r := []rune(*text); len(r) > 0 {
			*text = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		*text = ""
	case tea.KeySpace:
		*text += " "
	case tea.KeyRunes:
		*text += string(msg.Runes)
	}

	if m.mode == inputSearch {
		m.cursor = 0
	}
	return m
}

func (m model) commitInput() model {
	switch m.mode {
	case inputPlaylist:
		p, err := m.library.CreatePlaylist(m.input)
		if err != nil {
			m.status = err.Error()
			return m
		}
		m.logger.Debug("Playlist created", zap.String("name", p.Name))
	case inputProfile:
		var p library.Profile
		switch m.inputField {
		case "username":
			p.Username = m.input
		case "email":
			p.Email = m.input
		case "region":
			p.Region = m.input
		}
		m.library.UpdateProfile(p)
	}

	m.mode = inputNone
	m.input = ""
	m.inputField = ""
	return m
}

func (m model) activate() (tea.Model, tea.Cmd) {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return m, nil
	}
	r := rows[m.cursor]

	switch {
	case r.push != nil:
		m.shell.Push(*r.push)
		m = m.resetScreen()
	case r.trackID > 0:
		m.player.SelectTrack(r.trackID)
	case r.action != "":
		m = m.runAction(r.action)
	}
	return m, nil
}

func (m model) runAction(action string) model {
	field, isEdit := strings.CutPrefix(action, "edit:")
	if isEdit {
		m.mode = inputProfile
		m.inputField = field
		return m
	}

	switch action {
	case actionNewPlaylist:
		m.mode = inputPlaylist
	case actionLoadMore:
		m.viewLimit += library.PageSize
	case actionAddCurrent:
		m = m.addCurrentToPlaylist()
	case actionQuality:
		m.library.UpdatePreferences(func(p *library.Preferences) { p.Quality = p.Quality.Next() })
	case actionDataSaver:
		m.library.UpdatePreferences(func(p *library.Preferences) { p.DataSaver = !p.DataSaver })
	case actionNotifications:
		m.library.UpdatePreferences(func(p *library.Preferences) { p.Notifications = !p.Notifications })
	case actionTheme:
		m.library.UpdatePreferences(func(p *library.Preferences) { p.DarkMode = !p.DarkMode })
	case actionHelp0, actionHelp1:
		i := int(action[len(action)-1] - '0')
		if m.helpOpen == i {
			m.helpOpen = -1
		} else {
			m.helpOpen = i
		}
	}
	return m
}

func (m model) addCurrentToPlaylist() model {
	if m.snap.Track == nil {
		m.status = "nothing is playing"
		return m
	}
	screen, ok := m.shell.Current()
	if !ok || screen.Kind != screenPlaylist {
		return m
	}
	id, err := parsePlaylistID(screen.Param)
	if err != nil {
		m.status = err.Error()
		return m
	}
	if _, err := m.library.AddTrack(id, m.snap.Track.ID); err != nil {
		m.status = err.Error()
	}
	return m
}
