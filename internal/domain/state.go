package domain

import (
	"fmt"
	"time"
)

// CelebrationWindow is how long the completion overlay stays visible.
const CelebrationWindow = 3 * time.Second

// Celebration describes the transient overlay shown after a completion.
type Celebration struct {
	Visible     bool   `json:"visible"`
	Phrase      string `json:"phrase"`
	CoinAwarded bool   `json:"coinAwarded"`
}

// CurrentState is the snapshot handed to the presentation layer on every render.
type CurrentState struct {
	Mode               Mode
	RemainingSeconds   int
	TotalSeconds       int
	Running            bool
	Settings           Settings
	Rewards            RewardLedger
	MotivationalPhrase string
	Celebration        Celebration
	SettingsOpen       bool
}

// Clock renders the remaining time as mm:ss.
func (cs CurrentState) Clock() string {
	return FormatClock(cs.RemainingSeconds)
}

// Progress returns the elapsed fraction of the active interval (0.0 to 1.0).
func (cs CurrentState) Progress() float64 {
	return Progress(cs.TotalSeconds, cs.RemainingSeconds)
}

// IsIdle returns true when the timer sits at its full duration, not running.
func (cs CurrentState) IsIdle() bool {
	return !cs.Running && cs.RemainingSeconds == cs.TotalSeconds
}

// FormatClock formats seconds as two-digit zero-padded minutes and seconds.
// Minutes are not wrapped into hours, so 3600 renders as "60:00".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Progress computes (total - remaining) / total, or 0 for an empty interval.
func Progress(totalSeconds, remainingSeconds int) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	p := float64(totalSeconds-remainingSeconds) / float64(totalSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
