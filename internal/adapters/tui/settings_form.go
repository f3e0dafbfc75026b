package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodomate/internal/domain"
)

// settingsForm edits the three durations as free text. Coercion happens
// when the controller saves it.
type settingsForm struct {
	inputs [3]textinput.Model
	focus  int
}

var settingsLabels = [3]string{"Pomodoro", "Short Break", "Long Break"}

func newSettingsForm(s domain.Settings) settingsForm {
	values := domain.InputFromSettings(s)
	raw := [3]string{values.Work, values.ShortBreak, values.LongBreak}

	var f settingsForm
	for i := range f.inputs {
		in := textinput.New()
		in.CharLimit = 3
		in.Width = 4
		in.Prompt = ""
		in.SetValue(raw[i])
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

// Input returns the raw values typed so far.
func (f settingsForm) Input() domain.SettingsInput {
	return domain.SettingsInput{
		Work:       f.inputs[0].Value(),
		ShortBreak: f.inputs[1].Value(),
		LongBreak:  f.inputs[2].Value(),
	}
}

// move shifts focus by delta, wrapping around.
func (f *settingsForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *settingsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
