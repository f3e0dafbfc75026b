package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomodomate/internal/adapters/clock"
	"github.com/xvierd/pomodomate/internal/adapters/tui"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/services"
)

// runRefresh is how often the headless display is redrawn.
const runRefresh = 250 * time.Millisecond

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [mode]",
	Short: "Run one interval without the fullscreen interface",
	Long: `Count down a single interval in the terminal and exit when it finishes.
The mode defaults to work and accepts loose names such as "pomo", "short" or "long".
Completing a work interval earns a coin exactly as in the interactive timer.
Press Ctrl+C to abort; an aborted interval earns nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := domain.ModeWork
		if len(args) == 1 {
			m, err := domain.MatchMode(args[0])
			if err != nil {
				return err
			}
			mode = m
		}

		interactive := !jsonOutput && term.IsTerminal(os.Stdout.Fd())
		return runInterval(setupSignalHandler(), cmd.OutOrStdout(), mode, interactive)
	},
}

// runInterval drives one countdown on a clock.Loop until it completes or ctx ends.
func runInterval(ctx context.Context, w io.Writer, mode domain.Mode, interactive bool) error {
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()

	loop := clock.NewLoop()
	go func() { _ = loop.Run(loopCtx) }()

	var svc *services.PomodoroService
	done := make(chan struct{})
	err := loop.Do(ctx, func() {
		svc = app.newController(loopCtx, loop, app.logger)
		svc.OnCompletion(func(domain.Mode) {
			select {
			case <-done:
			default:
				close(done)
			}
		})
		svc.SetMode(mode)
		svc.Start()
	})
	if err != nil {
		return fmt.Errorf("failed to start timer: %w", err)
	}

	snapshot := func() domain.CurrentState {
		var state domain.CurrentState
		_ = loop.Do(loopCtx, func() { state = svc.Snapshot() })
		return state
	}

	lastMinute := -1
	if !interactive && !jsonOutput {
		start := snapshot()
		lastMinute = start.RemainingSeconds / 60
		fmt.Fprintf(w, "%s started: %s\n", mode.Label(), start.Clock())
	}

	ticker := time.NewTicker(runRefresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if interactive {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, "Aborted. No reward recorded.")
			return nil

		case <-done:
			return reportCompletion(w, snapshot(), interactive)

		case <-ticker.C:
			state := snapshot()
			if interactive {
				tui.ShowProgress(w, state)
				continue
			}
			if minute := state.RemainingSeconds / 60; !jsonOutput && minute != lastMinute && state.RemainingSeconds%60 == 0 {
				lastMinute = minute
				fmt.Fprintf(w, "%s remaining\n", state.Clock())
			}
		}
	}
}

func reportCompletion(w io.Writer, state domain.CurrentState, interactive bool) error {
	if jsonOutput {
		return tui.WriteJSON(w, state)
	}
	if interactive {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "✔ %s complete! %s\n", state.Mode.Label(), state.Celebration.Phrase)
	if state.Celebration.CoinAwarded {
		fmt.Fprintf(w, "  +1 coin · %d coins · %d-day streak\n", state.Rewards.Coins, state.Rewards.StreakDays)
	}
	if state.MotivationalPhrase != "" {
		fmt.Fprintf(w, "  Domate says: %s\n", state.MotivationalPhrase)
	}
	return nil
}
