// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// Server exposes the timer intents as MCP tools using mark3labs/mcp-go.
// Every handler runs its intent on the event loop that owns the controller.
type Server struct {
	server *server.MCPServer
	ctrl   ports.PomodoroController
	loop   ports.EventLoop
}

// NewServer creates a new MCP server instance.
func NewServer(ctrl ports.PomodoroController, loop ports.EventLoop, version string) *Server {
	s := &Server{
		ctrl: ctrl,
		loop: loop,
	}

	s.server = server.NewMCPServer(
		"pomodomate",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_state",
			mcp.WithDescription("Get the timer state: mode, remaining time, progress, coins, streak and the current phrase"),
		),
		s.handleGetState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start_timer",
			mcp.WithDescription("Start or resume the countdown of the current mode"),
		),
		s.handleStart,
	)

	s.server.AddTool(
		mcp.NewTool(
			"pause_timer",
			mcp.WithDescription("Pause the countdown, keeping the remaining time"),
		),
		s.handlePause,
	)

	s.server.AddTool(
		mcp.NewTool(
			"toggle_timer",
			mcp.WithDescription("Start the countdown if paused, pause it if running"),
		),
		s.handleToggle,
	)

	s.server.AddTool(
		mcp.NewTool(
			"reset_timer",
			mcp.WithDescription("Stop the countdown and restore the full duration of the current mode"),
		),
		s.handleReset,
	)

	setModeTool := mcp.NewTool(
		"set_mode",
		mcp.WithDescription("Switch mode; the timer resets to the new mode's duration"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("work, short_break or long_break (aliases such as pomodoro, short, long are accepted)"),
		),
	)
	s.server.AddTool(setModeTool, s.handleSetMode)

	saveSettingsTool := mcp.NewTool(
		"save_settings",
		mcp.WithDescription("Save durations in minutes. Out-of-range values become 1. Omitted values are kept. Resets the timer."),
		mcp.WithNumber(
			"work",
			mcp.Description("Pomodoro length, 1-60"),
		),
		mcp.WithNumber(
			"short_break",
			mcp.Description("Short break length, 1-30"),
		),
		mcp.WithNumber(
			"long_break",
			mcp.Description("Long break length, 1-60"),
		),
	)
	s.server.AddTool(saveSettingsTool, s.handleSaveSettings)
}

// Start serves MCP requests via stdio until stdin closes or the process is signalled.
func (s *Server) Start() error {
	return server.ServeStdio(s.server)
}

func (s *Server) handleGetState(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, nil)
}

func (s *Server) handleStart(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, s.ctrl.Start)
}

func (s *Server) handlePause(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, s.ctrl.Pause)
}

func (s *Server) handleToggle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, s.ctrl.Toggle)
}

func (s *Server) handleReset(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(ctx, s.ctrl.Reset)
}

// handleSetMode handles the set_mode tool.
func (s *Server) handleSetMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := domain.MatchMode(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.run(ctx, func() { s.ctrl.SetMode(mode) })
}

// handleSaveSettings handles the save_settings tool.
func (s *Server) handleSaveSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	return s.run(ctx, func() {
		input := domain.InputFromSettings(s.ctrl.Snapshot().Settings)
		if v, ok := args["work"]; ok {
			input.Work = argString(v)
		}
		if v, ok := args["short_break"]; ok {
			input.ShortBreak = argString(v)
		}
		if v, ok := args["long_break"]; ok {
			input.LongBreak = argString(v)
		}
		s.ctrl.SaveSettings(ctx, input)
	})
}

// run executes intent on the loop, then answers with the resulting state.
func (s *Server) run(ctx context.Context, intent func()) (*mcp.CallToolResult, error) {
	var state domain.CurrentState
	err := s.loop.Do(ctx, func() {
		if intent != nil {
			intent()
		}
		state = s.ctrl.Snapshot()
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timer unavailable: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(domain.StatusOf(state), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// argString renders a JSON argument the way a user would have typed it.
func argString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
