// Package cmd provides the CLI commands for the Pomodomate application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodomate/internal/adapters/tui"
	"github.com/xvierd/pomodomate/internal/config"
	"github.com/xvierd/pomodomate/internal/logging"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	dbPath     string
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomodomate",
	Short: "Pomodomate - a Pomodoro timer that pays you in coins",
	Long: `Pomodomate is a terminal Pomodoro timer. Finish a pomodoro to earn a coin,
finish one every day to grow your streak, and let Domate cheer you on.

Run "pomodomate" with no arguments to open the interactive timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.pomodomate/pomodomate.db)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Pomodomate\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(mcpCmd)
}

// runTUI opens the fullscreen timer. The terminal belongs to Bubbletea, so
// logs go to the log file instead of stderr.
func runTUI(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	logger, closer, err := logging.NewFile(config.GetLogPath(app.config), app.config.Log.Level)
	if err != nil {
		app.logger.Warn("logging disabled", "err", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	scheduler := tui.NewScheduler()
	controller := app.newController(ctx, scheduler, logger)

	if err := tui.Run(ctx, controller, scheduler, &app.config.Theme); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}
