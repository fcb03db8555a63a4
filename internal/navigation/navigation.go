// Package navigation tracks which screen the interactive UI shows.
package navigation

// Tab is a top-level section of the UI
type Tab int

const (
	TabHome Tab = iota
	TabLibrary
	TabSearch
	TabMe
)

// Tabs lists the tabs in bar order
var Tabs = []Tab{TabHome, TabLibrary, TabSearch, TabMe}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabLibrary:
		return "Library"
	case TabSearch:
		return "Search"
	case TabMe:
		return "Me"
	default:
		return "Unknown"
	}
}

// Screen is a drill-down entry pushed on top of a tab's root screen
type Screen struct {
	Kind  string // e.g. "section", "library", "settings"
	Param string // Kind-specific argument such as a section title
}

// Shell is the navigation state: the active tab, a drill-down stack per tab and
// whether the full-screen player covers everything.
// It is owned by the UI loop and is not safe for concurrent use.
type Shell struct {
	active     Tab
	stacks     map[Tab][]Screen
	playerOpen bool
}

// New creates a shell on the Home tab
func New() *Shell {
	return &Shell{
		active: TabHome,
		stacks: make(map[Tab][]Screen),
	}
}

// Active returns the selected tab
func (s *Shell) Active() Tab {
	return s.active
}

// Select switches tabs. The selected tab starts again from its root screen.
func (s *Shell) Select(tab Tab) {
	s.active = tab
	delete(s.stacks, tab)
}

// Next selects the tab after the active one, wrapping around
func (s *Shell) Next() {
	s.Select(Tabs[(int(s.active)+1)%len(Tabs)])
}

// Prev selects the tab before the active one, wrapping around
func (s *Shell) Prev() {
	s.Select(Tabs[(int(s.active)-1+len(Tabs))%len(Tabs)])
}

// Push opens a drill-down screen on the active tab
func (s *Shell) Push(screen Screen) {
	s.stacks[s.active] = append(s.stacks[s.active], screen)
}

// Replace swaps the top drill-down screen, or pushes when at the root
func (s *Shell) Replace(screen Screen) {
	stack := s.stacks[s.active]
	if len(stack) == 0 {
		s.Push(screen)
		return
	}
	stack[len(stack)-1] = screen
}

// Back pops the top drill-down screen. It reports false at the root.
func (s *Shell) Back() bool {
	stack := s.stacks[s.active]
	if len(stack) == 0 {
		return false
	}
	s.stacks[s.active] = stack[:len(stack)-1]
	return true
}

// Current returns the top drill-down screen of the active tab.
// The second result is false when the tab shows its root screen.
func (s *Shell) Current() (Screen, bool) {
	stack := s.stacks[s.active]
	if len(stack) == 0 {
		return Screen{}, false
	}
	return stack[len(stack)-1], true
}

// Depth returns the number of drill-down screens on the active tab
func (s *Shell) Depth() int {
	return len(s.stacks[s.active])
}

// OpenPlayer shows the full-screen player
func (s *Shell) OpenPlayer() {
	s.playerOpen = true
}

// ClosePlayer hides the full-screen player
func (s *Shell) ClosePlayer() {
	s.playerOpen = false
}

// PlayerOpen reports whether the full-screen player is shown
func (s *Shell) PlayerOpen() bool {
	return s.playerOpen
}
