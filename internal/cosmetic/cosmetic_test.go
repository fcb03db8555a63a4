package cosmetic

import (
	"testing"
	"time"
)

func TestProgress_Tick(t *testing.T) {
	tests := []struct {
		name        string
		ticks       int
		wantPercent float64
		wantLabel   string
	}{
		{name: "start", ticks: 0, wantPercent: 0, wantLabel: "0:00"},
		{name: "one tick", ticks: 1, wantPercent: 0.5, wantLabel: "0:00"},
		{name: "two ticks", ticks: 2, wantPercent: 1, wantLabel: "0:01"},
		{name: "halfway", ticks: 100, wantPercent: 50, wantLabel: "1:30"},
		{name: "full", ticks: 200, wantPercent: 100, wantLabel: "3:00"},
		{name: "wraps after full", ticks: 201, wantPercent: 0, wantLabel: "0:00"},
		{name: "second lap", ticks: 203, wantPercent: 1, wantLabel: "0:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Progress
			for i := 0; i < tt.ticks; i++ {
				p.Tick()
			}
			if p.Percent() != tt.wantPercent {
				t.Errorf("percent: want %v, got %v", tt.wantPercent, p.Percent())
			}
			if p.Label() != tt.wantLabel {
				t.Errorf("label: want %s, got %s", tt.wantLabel, p.Label())
			}
			if p.TotalLabel() != "3:00" {
				t.Errorf("total: want 3:00, got %s", p.TotalLabel())
			}
		})
	}
}

func TestProgress_Reset(t *testing.T) {
	var p Progress
	p.Tick()
	p.Reset()
	if p.Percent() != 0 {
		t.Errorf("expected 0 after reset, got %v", p.Percent())
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{12 * time.Minute, "12:00"},
		{-time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLyrics_Tick(t *testing.T) {
	l := NewLyrics([]string{"one", "two", "three"})

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		l.Tick()
		if l.Active() != w {
			t.Errorf("tick %d: want %d, got %d", i+1, w, l.Active())
		}
	}

	l.Reset([]string{"solo"})
	l.Tick()
	if l.Active() != 0 {
		t.Errorf("single line should stay on 0, got %d", l.Active())
	}
}

func TestLyrics_Empty(t *testing.T) {
	l := NewLyrics(nil)
	l.Tick()
	if !l.Empty() || l.Active() != 0 {
		t.Errorf("empty lyrics should not move, got %d", l.Active())
	}
}
