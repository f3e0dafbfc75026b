package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodomate/internal/adapters/clock"
	"github.com/xvierd/pomodomate/internal/domain"
)

var (
	settingsWork  string
	settingsShort string
	settingsLong  string
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the timer durations",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := app.stateStore().LoadSettings(context.Background(), app.config.DefaultSettings())
		return printSettings(cmd.OutOrStdout(), settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save timer durations in minutes",
	Long: `Save new durations. Work and long break accept 1-60 minutes, short break 1-30.
Anything out of range or not a number is saved as 1 minute.
Omitted flags keep their current value.`,
	Example: `  pomodomate settings set --work 50 --short 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// The controller is never started, so an idle loop is enough to host it.
		controller := app.newController(ctx, clock.NewLoop(), app.logger)
		input := domain.InputFromSettings(controller.Snapshot().Settings)

		flags := cmd.Flags()
		if flags.Changed("work") {
			input.Work = settingsWork
		}
		if flags.Changed("short") {
			input.ShortBreak = settingsShort
		}
		if flags.Changed("long") {
			input.LongBreak = settingsLong
		}

		saved := controller.SaveSettings(ctx, input)
		return printSettings(cmd.OutOrStdout(), saved)
	},
}

func printSettings(w io.Writer, s domain.Settings) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		return nil
	}

	for _, mode := range domain.Modes {
		fmt.Fprintf(w, "%-12s %2d min  (1-%d)\n", mode.Label()+":", s.Minutes(mode), domain.MaxMinutes(mode))
	}
	return nil
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsWork, "work", "", "Pomodoro length in minutes")
	settingsSetCmd.Flags().StringVar(&settingsShort, "short", "", "Short break length in minutes")
	settingsSetCmd.Flags().StringVar(&settingsLong, "long", "", "Long break length in minutes")
	settingsCmd.AddCommand(settingsSetCmd)
}
