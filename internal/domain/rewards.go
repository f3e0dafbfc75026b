package domain

import "time"

// DateLayout is the calendar-date encoding used for lastCompletionDate.
const DateLayout = "2006-01-02"

// DateKey returns the local calendar date of t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// RewardLedger tracks coins earned and the daily completion streak.
type RewardLedger struct {
	Coins              int    `json:"coins"`
	StreakDays         int    `json:"streakDays"`
	LastCompletionDate string `json:"lastCompletionDate"`
}

// RecordCompletion applies a finished work interval completed on today.
// Coins always increase by one. The streak grows when the previous completion was
// yesterday, stays put when it was today, and restarts at 1 otherwise.
// It reports whether the streak or date changed.
func (l *RewardLedger) RecordCompletion(today time.Time) bool {
	l.Coins++

	todayKey := DateKey(today)
	if l.LastCompletionDate == todayKey {
		return false
	}

	yesterdayKey := DateKey(today.AddDate(0, 0, -1))
	if l.LastCompletionDate == yesterdayKey {
		l.StreakDays++
	} else {
		l.StreakDays = 1
	}
	l.LastCompletionDate = todayKey
	return true
}

// Normalize clamps counters that a corrupt store could have made negative.
func (l RewardLedger) Normalize() RewardLedger {
	if l.Coins < 0 {
		l.Coins = 0
	}
	if l.StreakDays < 0 {
		l.StreakDays = 0
	}
	if l.LastCompletionDate != "" {
		if _, err := time.Parse(DateLayout, l.LastCompletionDate); err != nil {
			l.LastCompletionDate = ""
		}
	}
	return l
}
