package domain

import (
	"strconv"
	"strings"
	"time"
)

// FallbackMinutes is the duration any malformed or out-of-bound input is coerced to.
const FallbackMinutes = 1

// Settings holds the per-mode durations, in minutes.
type Settings struct {
	Work       int `json:"work"`
	ShortBreak int `json:"shortBreak"`
	LongBreak  int `json:"longBreak"`
}

// DefaultSettings returns the standard pomodoro durations.
func DefaultSettings() Settings {
	return Settings{
		Work:       25,
		ShortBreak: 5,
		LongBreak:  15,
	}
}

// MaxMinutes returns the upper bound for a mode's duration.
func MaxMinutes(m Mode) int {
	if m == ModeShortBreak {
		return 30
	}
	return 60
}

// Minutes returns the configured duration for a mode.
func (s Settings) Minutes(m Mode) int {
	switch m {
	case ModeShortBreak:
		return s.ShortBreak
	case ModeLongBreak:
		return s.LongBreak
	default:
		return s.Work
	}
}

// Seconds returns the configured duration for a mode in whole seconds.
func (s Settings) Seconds(m Mode) int {
	return s.Minutes(m) * 60
}

// Duration returns the configured duration for a mode.
func (s Settings) Duration(m Mode) time.Duration {
	return time.Duration(s.Minutes(m)) * time.Minute
}

// With returns a copy of s with the duration for m replaced.
func (s Settings) With(m Mode, minutes int) Settings {
	switch m {
	case ModeShortBreak:
		s.ShortBreak = minutes
	case ModeLongBreak:
		s.LongBreak = minutes
	default:
		s.Work = minutes
	}
	return s
}

// Normalize coerces every duration into its bound, replacing invalid values with FallbackMinutes.
func (s Settings) Normalize() Settings {
	for _, m := range Modes {
		s = s.With(m, boundMinutes(m, s.Minutes(m)))
	}
	return s
}

// IsValid returns true when every duration is within its bound.
func (s Settings) IsValid() bool {
	return s == s.Normalize()
}

func boundMinutes(m Mode, minutes int) int {
	if minutes < 1 || minutes > MaxMinutes(m) {
		return FallbackMinutes
	}
	return minutes
}

// SettingsInput carries raw, unvalidated durations as typed into a form or flags.
type SettingsInput struct {
	Work       string
	ShortBreak string
	LongBreak  string
}

// InputFromSettings renders settings back into form values.
func InputFromSettings(s Settings) SettingsInput {
	return SettingsInput{
		Work:       strconv.Itoa(s.Work),
		ShortBreak: strconv.Itoa(s.ShortBreak),
		LongBreak:  strconv.Itoa(s.LongBreak),
	}
}

// Settings parses the input. Each field that is not a positive integer within its
// mode's bound becomes FallbackMinutes.
func (in SettingsInput) Settings() Settings {
	return Settings{
		Work:       ParseMinutes(ModeWork, in.Work),
		ShortBreak: ParseMinutes(ModeShortBreak, in.ShortBreak),
		LongBreak:  ParseMinutes(ModeLongBreak, in.LongBreak),
	}
}

// ParseMinutes reads the leading integer of raw ("25", " 7 min", "2.5" -> 2) and
// bounds it for the mode. Anything unparseable yields FallbackMinutes.
func ParseMinutes(m Mode, raw string) int {
	n, ok := leadingInt(strings.TrimSpace(raw))
	if !ok {
		return FallbackMinutes
	}
	return boundMinutes(m, n)
}

// leadingInt parses an optionally signed run of digits at the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
