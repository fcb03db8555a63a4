package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/genricoloni/vudia/internal/domain"
	"github.com/genricoloni/vudia/internal/navigation"
)

const (
	progressWidth = 30
	lyricsWindow  = 5 // Lines shown around the active lyric
	rowsVisible   = 15
)

func (m model) View() string {
	th := m.theme()

	if m.shell.PlayerOpen() && m.snap.Track != nil {
		return m.renderNowPlaying(th)
	}

	var b strings.Builder
	b.WriteString(m.renderTabs(th))
	b.WriteString("\n\n")
	b.WriteString(th.title.Render(m.screenTitle()))
	b.WriteString("\n")
	if sub := m.screenSubtitle(); sub != "" {
		b.WriteString(th.subtle.Render(sub))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderRows(th))
	b.WriteString(m.renderExtra(th))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(th.errText.Render("  " + m.status))
		b.WriteString("\n")
	}

	if m.snap.Track != nil {
		b.WriteString("\n")
		b.WriteString(m.renderMiniPlayer(th))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.subtle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m model) renderTabs(th theme) string {
	tabs := make([]string, 0, len(navigation.Tabs))
	for _, tab := range navigation.Tabs {
		if tab == m.shell.Active() {
			tabs = append(tabs, th.tabOn.Render(tab.String()))
		} else {
			tabs = append(tabs, th.tabOff.Render(tab.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) screenTitle() string {
	screen, ok := m.shell.Current()
	if !ok {
		switch m.shell.Active() {
		case navigation.TabHome:
			return "Good Evening"
		case navigation.TabMe:
			return "Vudia"
		default:
			return m.shell.Active().String()
		}
	}

	switch screen.Kind {
	case screenSection:
		return screen.Param
	case screenLibrary:
		if view, err := m.libraryView(screen.Param); err == nil {
			return view.Title
		}
	case screenPlaylist:
		if id, err := parsePlaylistID(screen.Param); err == nil {
			if p, err := m.library.Playlist(id); err == nil {
				return p.Name
			}
		}
	case screenAccount:
		return "Account Information"
	case screenSettings:
		return "Settings & Privacy"
	case screenPolicy:
		return "Privacy Policy"
	case screenHelp:
		return "Help Centre"
	}
	return ""
}

func (m model) screenSubtitle() string {
	if _, ok := m.shell.Current(); ok {
		return ""
	}
	switch m.shell.Active() {
	case navigation.TabHome:
		return "Welcome back to Vudia"
	case navigation.TabSearch:
		switch {
		case m.mode == inputSearch:
			return "Search: [" + m.query + "_]"
		case m.query != "":
			return "Search: [" + m.query + "]"
		default:
			return "/ to search songs or artists"
		}
	case navigation.TabMe:
		return "Vudia Entertainments"
	}
	return ""
}

func (m model) renderRows(th theme) string {
	rows := m.rows()
	if len(rows) == 0 {
		return th.subtle.Render("  Nothing here yet") + "\n"
	}

	// Keep the cursor on screen
	start := 0
	if m.cursor >= rowsVisible {
		start = m.cursor - rowsVisible + 1
	}
	end := min(start+rowsVisible, len(rows))

	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		line := r.title
		if r.trackID > 0 && m.library.IsLiked(r.trackID) {
			line += " ♥"
		}
		if m.mode == inputProfile && r.action == "edit:"+m.inputField {
			line = fmt.Sprintf("%-12s [%s_]", r.title, m.input)
		} else if r.subtitle != "" {
			line = fmt.Sprintf("%-28s %s", line, th.subtle.Render(r.subtitle))
		}

		if i == m.cursor {
			b.WriteString(th.selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")

		if m.helpOpen >= 0 && r.action == helpActions[m.helpOpen] {
			b.WriteString(th.subtle.Render("    Answer here..."))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) renderExtra(th theme) string {
	if m.mode == inputPlaylist {
		return "\n  New playlist name: " + th.accent.Render("["+m.input+"_]") + "\n"
	}
	if screen, ok := m.shell.Current(); ok && screen.Kind == screenPolicy {
		return th.subtle.Render("  Privacy Policy Content Here...") + "\n"
	}
	return ""
}

func (m model) renderMiniPlayer(th theme) string {
	t := m.snap.Track
	state := "▶"
	if m.snap.IsPlaying {
		state = "⏸"
	}
	line := fmt.Sprintf("%s  %s  %s", state, th.title.Render(t.Title), th.subtle.Render(t.Artist))
	return th.mini.Render(line + "   " + th.subtle.Render("o expand"))
}

func (m model) renderNowPlaying(th theme) string {
	t := m.snap.Track

	var b strings.Builder
	b.WriteString(th.subtle.Render("  Now Playing"))
	b.WriteString("\n\n  ")
	b.WriteString(th.title.Render(t.Title))
	if m.library.IsLiked(t.ID) {
		b.WriteString(th.accent.Render("  ♥"))
	} else {
		b.WriteString(th.subtle.Render("  ♡"))
	}
	b.WriteString("\n  ")
	b.WriteString(th.subtle.Render(t.Artist))
	b.WriteString("\n\n")

	b.WriteString(m.renderLyrics(th))
	b.WriteString("\n")

	b.WriteString("  " + m.progress.Label() + " ")
	b.WriteString(progressBar(m.progress.Percent(), progressWidth))
	b.WriteString(" " + m.progress.TotalLabel())
	b.WriteString("\n\n  ")

	shuffle := th.subtle.Render("shuffle")
	if m.snap.IsShuffle {
		shuffle = th.accent.Render("shuffle")
	}
	repeat := th.subtle.Render("repeat " + m.snap.RepeatMode.String())
	if m.snap.RepeatMode != domain.RepeatOff {
		repeat = th.accent.Render("repeat " + m.snap.RepeatMode.String())
	}
	state := "play"
	if m.snap.IsPlaying {
		state = "pause"
	}
	fmt.Fprintf(&b, "%s   ⏮  %s  ⏭   %s", shuffle, state, repeat)
	b.WriteString(th.subtle.Render(fmt.Sprintf("   %d of %d", m.snap.Index+1, m.snap.CatalogSize)))
	b.WriteString("\n\n")
	b.WriteString(th.subtle.Render("  space play/pause • n/p next/prev • s shuffle • r repeat • l like • esc close"))
	b.WriteString("\n")
	return b.String()
}

func (m model) renderLyrics(th theme) string {
	if m.lyrics.Empty() {
		return th.subtle.Render("  Lyrics not available") + "\n"
	}

	lines := m.lyrics.Lines()
	active := m.lyrics.Active()
	start := max(active-lyricsWindow/2, 0)
	end := min(start+lyricsWindow, len(lines))

	var b strings.Builder
	for i := start; i < end; i++ {
		if i == active {
			b.WriteString("  " + th.lyricOn.Render(lines[i]))
		} else {
			b.WriteString("  " + th.lyricOff.Render(lines[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("━", filled) + strings.Repeat("─", width-filled) + "]"
}

func (m model) helpLine() string {
	switch m.mode {
	case inputSearch, inputPlaylist, inputProfile:
		return "  enter confirm • esc cancel"
	}

	return "  tab switch • enter select • esc back • space play/pause • n/p next/prev • o player • t theme • q quit"
}
