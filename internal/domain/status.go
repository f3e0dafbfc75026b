package domain

// Status is the machine-readable form of a CurrentState, shared by the
// --json output and the MCP tools.
type Status struct {
	Mode               Mode         `json:"mode"`
	Label              string       `json:"label"`
	Clock              string       `json:"clock"`
	RemainingSeconds   int          `json:"remainingSeconds"`
	TotalSeconds       int          `json:"totalSeconds"`
	Progress           float64      `json:"progress"`
	Running            bool         `json:"running"`
	Settings           Settings     `json:"settings"`
	Coins              int          `json:"coins"`
	StreakDays         int          `json:"streakDays"`
	LastCompletionDate string       `json:"lastCompletionDate"`
	MotivationalPhrase string       `json:"motivationalPhrase,omitempty"`
	Celebration        *Celebration `json:"celebration,omitempty"`
}

// StatusOf flattens state. The celebration is included only while visible.
func StatusOf(state CurrentState) Status {
	s := Status{
		Mode:               state.Mode,
		Label:              state.Mode.Label(),
		Clock:              state.Clock(),
		RemainingSeconds:   state.RemainingSeconds,
		TotalSeconds:       state.TotalSeconds,
		Progress:           state.Progress(),
		Running:            state.Running,
		Settings:           state.Settings,
		Coins:              state.Rewards.Coins,
		StreakDays:         state.Rewards.StreakDays,
		LastCompletionDate: state.Rewards.LastCompletionDate,
		MotivationalPhrase: state.MotivationalPhrase,
	}
	if state.Celebration.Visible {
		c := state.Celebration
		s.Celebration = &c
	}
	return s
}
