package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodomate/internal/config"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// Run starts the fullscreen interface and blocks until the user quits or ctx ends.
// The controller must have been built on scheduler.
func Run(ctx context.Context, ctrl ports.PomodoroController, scheduler *Scheduler, theme *config.ThemeConfig) error {
	model := NewModel(ctx, ctrl, scheduler, theme)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	scheduler.Attach(program)
	defer scheduler.Stop()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// WriteJSON writes the status view of state as indented JSON.
func WriteJSON(w io.Writer, state domain.CurrentState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(domain.StatusOf(state)); err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}
	return nil
}

// ShowStatus displays the persisted timer state without starting interactive mode.
func ShowStatus(w io.Writer, settings domain.Settings, rewards domain.RewardLedger) {
	fmt.Fprintln(w, "🍅 Pomodomate")
	fmt.Fprintf(w, "   Coins: %d\n", rewards.Coins)
	fmt.Fprintf(w, "   Streak: %d day(s)\n", rewards.StreakDays)
	if rewards.LastCompletionDate != "" {
		fmt.Fprintf(w, "   Last pomodoro: %s\n", rewards.LastCompletionDate)
	}

	fmt.Fprintf(w, "\n⏱  Durations:\n")
	for _, mode := range domain.Modes {
		fmt.Fprintf(w, "   %-12s %s\n", mode.Label()+":", domain.FormatClock(settings.Seconds(mode)))
	}
}

// ShowProgress writes a one-line, carriage-return-refreshed view of state.
func ShowProgress(w io.Writer, state domain.CurrentState) {
	status := "running"
	if !state.Running {
		status = "paused"
	}
	fmt.Fprintf(w, "\r%s  %s  %3.0f%%  (%s)  🪙 %d  ", state.Mode.Label(), state.Clock(), state.Progress()*100, status, state.Rewards.Coins)
}
