package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodomate/internal/adapters/tui"
	"github.com/xvierd/pomodomate/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show coins, streak and durations",
	Long:  `Display the persisted rewards and the configured durations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		store := app.stateStore()

		settings := store.LoadSettings(ctx, app.config.DefaultSettings())
		rewards := store.LoadRewards(ctx)

		if jsonOutput {
			// Shaped like a fresh timer, so it matches the MCP get_state output.
			return tui.WriteJSON(cmd.OutOrStdout(), domain.CurrentState{
				Mode:             domain.ModeWork,
				RemainingSeconds: settings.Seconds(domain.ModeWork),
				TotalSeconds:     settings.Seconds(domain.ModeWork),
				Settings:         settings,
				Rewards:          rewards,
			})
		}

		tui.ShowStatus(cmd.OutOrStdout(), settings, rewards)
		return nil
	},
}
