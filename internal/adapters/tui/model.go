// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"reflect"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomodomate/internal/config"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// Model represents the TUI state. Everything about the timer lives in the
// controller; the model only holds layout and the settings form.
type Model struct {
	ctx       context.Context
	ctrl      ports.PomodoroController
	scheduler *Scheduler
	theme     config.ThemeConfig
	progress  progress.Model
	form      settingsForm
	width     int
	height    int
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, ctrl ports.PomodoroController, scheduler *Scheduler, theme *config.ThemeConfig) Model {
	return Model{
		ctx:       ctx,
		ctrl:      ctrl,
		scheduler: scheduler,
		theme:     resolveTheme(theme),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduledTickMsg:
		if m.scheduler != nil {
			m.scheduler.fire(msg.handle)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(min(msg.Width-4, 60), 10)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ctrl.Snapshot().SettingsOpen {
			return m.updateSettings(msg)
		}
		return m.updateTimer(msg)
	}

	return m, nil
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "p":
		m.ctrl.Toggle()
	case "r":
		m.ctrl.Reset()
	case "1":
		m.ctrl.SetMode(domain.ModeWork)
	case "2":
		m.ctrl.SetMode(domain.ModeShortBreak)
	case "3":
		m.ctrl.SetMode(domain.ModeLongBreak)
	case "tab":
		m.ctrl.SetMode(m.ctrl.Snapshot().Mode.Next())
	case "s":
		m.ctrl.OpenSettings()
		m.form = newSettingsForm(m.ctrl.Snapshot().Settings)
		return m, m.form.inputs[0].Cursor.BlinkCmd()
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CloseSettings()
		return m, nil
	case "enter":
		m.ctrl.SaveSettings(m.ctx, m.form.Input())
		return m, nil
	case "tab", "down":
		return m, m.form.move(1)
	case "shift+tab", "up":
		return m, m.form.move(-1)
	}
	return m, m.form.update(msg)
}

// modeColor returns the accent for a mode.
func (m Model) modeColor(mode domain.Mode) lipgloss.Color {
	switch mode {
	case domain.ModeShortBreak:
		return lipgloss.Color(m.theme.ColorShortBreak)
	case domain.ModeLongBreak:
		return lipgloss.Color(m.theme.ColorLongBreak)
	default:
		return lipgloss.Color(m.theme.ColorWork)
	}
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.ctrl.Snapshot()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	titleStyle := lipgloss.NewStyle().Bold(true).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s Pomodomate", m.theme.IconApp)))
	sections = append(sections, m.viewModeTabs(state.Mode))
	sections = append(sections, "")

	clockColor := m.modeColor(state.Mode)
	if !state.Running && !state.IsIdle() && state.RemainingSeconds > 0 {
		clockColor = lipgloss.Color(m.theme.ColorPaused)
	}
	sections = append(sections, renderBigClock(state.Clock(), clockColor, m.width))
	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(state.Progress()))

	if !state.Running && !state.IsIdle() && state.RemainingSeconds > 0 {
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render("⏸ PAUSED")
		sections = append(sections, "", badge)
	}

	sections = append(sections, "", m.viewRewards(state.Rewards))

	if state.MotivationalPhrase != "" {
		phraseStyle := lipgloss.NewStyle().Italic(true).Foreground(m.modeColor(state.Mode))
		sections = append(sections, phraseStyle.Render("Domate says: "+state.MotivationalPhrase))
	}

	if state.Celebration.Visible {
		sections = append(sections, "", m.viewCelebration(state))
	}

	sections = append(sections, "")
	if state.SettingsOpen {
		sections = append(sections, m.viewSettings())
		sections = append(sections, "", helpStyle.Render("tab next · shift+tab previous · enter save · esc cancel"))
	} else {
		action := "start"
		if state.Running {
			action = "pause"
		}
		sections = append(sections, helpStyle.Render(fmt.Sprintf("[space] %s  [r]eset  [1/2/3] mode  [s]ettings  [q]uit", action)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewModeTabs(active domain.Mode) string {
	tabs := make([]string, 0, len(domain.Modes))
	for i, mode := range domain.Modes {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(m.theme.ColorHelp))
		if mode == active {
			style = style.Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(m.modeColor(mode))
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, mode.Label())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewRewards(ledger domain.RewardLedger) string {
	coins := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorCoins)).
		Render(fmt.Sprintf("🪙 %d coins", ledger.Coins))
	streak := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorStreak)).
		Render(fmt.Sprintf("🔥 %d-day streak", ledger.StreakDays))
	return coins + "   " + streak
}

func (m Model) viewCelebration(state domain.CurrentState) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(state.Celebration.Phrase)}
	if state.Celebration.CoinAwarded {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorCoins)).Render("+1 coin"))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.modeColor(state.Mode)).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) viewSettings() string {
	labelStyle := lipgloss.NewStyle().Width(12)
	focusStyle := labelStyle.Bold(true).Foreground(lipgloss.Color(m.theme.ColorWork))
	rows := make([]string, 0, len(m.form.inputs)+1)
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render("Settings (minutes)"))
	for i, in := range m.form.inputs {
		label := labelStyle.Render(settingsLabels[i])
		if i == m.form.focus {
			label = focusStyle.Render(settingsLabels[i])
		}
		bound := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf(" 1-%d", domain.MaxMinutes(domain.Modes[i])))
		rows = append(rows, label+in.View()+bound)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
