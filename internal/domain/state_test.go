package domain

import (
	"fmt"
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{300, "05:00"},
		{90, "01:30"},
		{59, "00:59"},
		{0, "00:00"},
		{3600, "60:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatClock_WholeMinutes(t *testing.T) {
	for d := 1; d <= 60; d++ {
		want := fmt.Sprintf("%02d:00", d)
		if got := FormatClock(d * 60); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", d*60, got, want)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		remaining int
		want      float64
	}{
		{"not started", 1500, 1500, 0},
		{"halfway", 1500, 750, 0.5},
		{"finished", 1500, 0, 1},
		{"empty interval", 0, 0, 0},
		{"remaining above total", 60, 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.total, tt.remaining); got != tt.want {
				t.Errorf("Progress(%d, %d) = %v, want %v", tt.total, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestCurrentState_IsIdle(t *testing.T) {
	cs := CurrentState{TotalSeconds: 300, RemainingSeconds: 300}
	if !cs.IsIdle() {
		t.Error("IsIdle() should be true at full duration and not running")
	}

	cs.Running = true
	if cs.IsIdle() {
		t.Error("IsIdle() should be false while running")
	}

	cs.Running = false
	cs.RemainingSeconds = 299
	if cs.IsIdle() {
		t.Error("IsIdle() should be false once time has elapsed")
	}
}

func TestStatusOf(t *testing.T) {
	state := CurrentState{
		Mode:             ModeShortBreak,
		RemainingSeconds: 150,
		TotalSeconds:     300,
		Settings:         DefaultSettings(),
		Rewards:          RewardLedger{Coins: 4, StreakDays: 2, LastCompletionDate: "2026-03-10"},
	}

	got := StatusOf(state)
	if got.Clock != "02:30" || got.Progress != 0.5 || got.Label != "Short Break" {
		t.Errorf("StatusOf() = %+v", got)
	}
	if got.Coins != 4 || got.StreakDays != 2 {
		t.Errorf("StatusOf() rewards = %d coins, %d days", got.Coins, got.StreakDays)
	}
	if got.Celebration != nil {
		t.Error("hidden celebration should be omitted")
	}

	state.Celebration = Celebration{Visible: true, Phrase: "Mission accomplished! 🏆"}
	if got := StatusOf(state); got.Celebration == nil || got.Celebration.Phrase != state.Celebration.Phrase {
		t.Errorf("visible celebration missing: %+v", got.Celebration)
	}
}
