package services

import (
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/timer"
)

// ModeController binds the active mode and the settings to the engine.
// Every mode or settings change resets the engine to the full duration.
type ModeController struct {
	engine   *timer.Engine
	mode     domain.Mode
	settings domain.Settings
}

// NewModeController starts in work mode with the engine reset to its duration.
func NewModeController(engine *timer.Engine, settings domain.Settings) *ModeController {
	c := &ModeController{
		engine:   engine,
		mode:     domain.ModeWork,
		settings: settings,
	}
	c.ResetTimer()
	return c
}

// Mode returns the active mode.
func (c *ModeController) Mode() domain.Mode {
	return c.mode
}

// Settings returns the durations in effect.
func (c *ModeController) Settings() domain.Settings {
	return c.settings
}

// SetMode switches mode and resets the countdown, even when m is already active.
func (c *ModeController) SetMode(m domain.Mode) {
	c.mode = m
	c.ResetTimer()
}

// ApplySettings replaces the durations. The running countdown is discarded.
func (c *ModeController) ApplySettings(s domain.Settings) {
	c.settings = s
	c.ResetTimer()
}

// ResetTimer restores the active mode's full duration and stops the engine.
func (c *ModeController) ResetTimer() {
	c.engine.Reset(c.TotalSeconds())
}

// TotalSeconds returns the active mode's duration in seconds.
func (c *ModeController) TotalSeconds() int {
	return c.settings.Seconds(c.mode)
}
