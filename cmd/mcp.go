package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomodomate/internal/adapters/clock"
	"github.com/xvierd/pomodomate/internal/adapters/mcp"
	"github.com/xvierd/pomodomate/internal/services"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server drives a live timer and exposes it through tools such as
get_state, start_timer and save_settings. It communicates via stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(setupSignalHandler())
		defer cancel()

		loop := clock.NewLoop()
		go func() { _ = loop.Run(ctx) }()

		var controller *services.PomodoroService
		if err := loop.Do(ctx, func() {
			controller = app.newController(ctx, loop, app.logger)
		}); err != nil {
			return fmt.Errorf("failed to start timer: %w", err)
		}

		// stdout carries the protocol, so status goes to the stderr logger.
		app.logger.Info("starting MCP server on stdio")

		server := mcp.NewServer(controller, loop, Version)
		if err := server.Start(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}
