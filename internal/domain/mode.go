package domain

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Mode represents which interval the timer is counting.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in display order.
var Modes = []Mode{
	ModeWork,
	ModeShortBreak,
	ModeLongBreak,
}

// ParseMode checks if a string is a valid mode identifier.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Modes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of work, short_break, long_break", ErrInvalidMode, s)
}

// modeAliases are the names a user may type for each mode.
var modeAliases = []struct {
	name string
	mode Mode
}{
	{"work", ModeWork},
	{"pomodoro", ModeWork},
	{"focus", ModeWork},
	{"short_break", ModeShortBreak},
	{"short", ModeShortBreak},
	{"long_break", ModeLongBreak},
	{"long", ModeLongBreak},
}

// MatchMode resolves loosely typed input ("pomo", "short", "lng") to a mode.
// Exact identifiers win; otherwise the best fuzzy match over the aliases is used.
func MatchMode(input string) (Mode, error) {
	if m, err := ParseMode(input); err == nil {
		return m, nil
	}

	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return "", fmt.Errorf("%w: empty mode", ErrInvalidMode)
	}

	names := make([]string, len(modeAliases))
	for i, a := range modeAliases {
		names[i] = a.name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w %q", ErrInvalidMode, input)
	}
	return modeAliases[matches[0].Index].mode, nil
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsWork returns true for the work mode, the only one that earns rewards.
func (m Mode) IsWork() bool {
	return m == ModeWork
}

// IsBreak returns true for either break mode.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// Next returns the mode after m in display order, wrapping around.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeWork
}
