// Package cosmetic holds presentation-only animations: the progress sweep and the
// lyrics auto-scroll. They run on fixed intervals, never touch playback state and
// are not derived from the real audio position.
package cosmetic

import (
	"fmt"
	"time"
)

const (
	// ProgressInterval is how often the progress sweep advances
	ProgressInterval = time.Second
	// ProgressStep is the percentage added on each tick
	ProgressStep = 0.5
	// NominalLength is the track length the sweep pretends every track has
	NominalLength = 3 * time.Minute
	// LyricsInterval is how often the highlighted lyric line advances
	LyricsInterval = 3 * time.Second
)

// Progress is an approximate progress bar that sweeps from 0 to 100 percent
type Progress struct {
	percent float64
}

// Tick advances the sweep, wrapping to zero once it reaches 100
func (p *Progress) Tick() {
	if p.percent >= 100 {
		p.percent = 0
		return
	}
	p.percent += ProgressStep
}

// Reset moves the sweep back to the start
func (p *Progress) Reset() {
	p.percent = 0
}

// Percent returns the sweep position in [0, 100]
func (p *Progress) Percent() float64 {
	return p.percent
}

// Elapsed maps the sweep onto NominalLength
func (p *Progress) Elapsed() time.Duration {
	return time.Duration(p.percent / 100 * float64(NominalLength))
}

// Label returns the elapsed time as m:ss
func (p *Progress) Label() string {
	return FormatClock(p.Elapsed())
}

// TotalLabel returns NominalLength as m:ss
func (p *Progress) TotalLabel() string {
	return FormatClock(NominalLength)
}

// FormatClock renders d as m:ss, truncating sub-second precision
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Lyrics highlights one line at a time, advancing on each tick and wrapping around
type Lyrics struct {
	lines  []string
	active int
}

// NewLyrics creates a scroller positioned on the first line
func NewLyrics(lines []string) *Lyrics {
	return &Lyrics{lines: lines}
}

// Reset replaces the lines and moves back to the first one
func (l *Lyrics) Reset(lines []string) {
	l.lines = lines
	l.active = 0
}

// Tick highlights the next line. Without lines it does nothing.
func (l *Lyrics) Tick() {
	if len(l.lines) == 0 {
		return
	}
	l.active = (l.active + 1) % len(l.lines)
}

// Active returns the index of the highlighted line
func (l *Lyrics) Active() int {
	return l.active
}

// Lines returns all lines
func (l *Lyrics) Lines() []string {
	return l.lines
}

// Empty reports whether there is nothing to show
func (l *Lyrics) Empty() bool {
	return len(l.lines) == 0
}
