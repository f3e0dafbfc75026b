package ports

import (
	"context"

	"github.com/xvierd/pomodomate/internal/domain"
)

// PomodoroController exposes the user intents of the timer.
// This is a driving port (called by the TUI, CLI and MCP adapters).
// Implementations are not safe for concurrent use; callers serialize access
// through their event queue.
type PomodoroController interface {
	// Snapshot returns the state to render.
	Snapshot() domain.CurrentState

	// Start begins or resumes the countdown.
	Start()

	// Pause halts the countdown, keeping the remaining time.
	Pause()

	// Toggle flips between running and paused.
	Toggle()

	// Reset restores the active mode's full duration and stops the timer.
	Reset()

	// SetMode switches the active mode and resets the timer to its duration.
	SetMode(mode domain.Mode)

	// OpenSettings shows the settings editor.
	OpenSettings()

	// CloseSettings hides the settings editor without saving.
	CloseSettings()

	// SaveSettings coerces, persists and applies durations, then closes the editor.
	SaveSettings(ctx context.Context, input domain.SettingsInput) domain.Settings
}
