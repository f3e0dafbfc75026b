package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete coins, streak and saved settings",
	Long: `Permanently deletes every saved entry: coins, streak and durations.
This cannot be undone. Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return errors.New("refusing to reset without a terminal; pass --force")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "This will permanently delete your progress in: %s\n", dbPath)
			fmt.Fprint(cmd.OutOrStdout(), "Are you sure? Type 'yes' to confirm: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		if err := app.stateStore().Clear(context.Background()); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Progress deleted. Fresh start.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}
