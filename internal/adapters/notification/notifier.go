// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomodomate/internal/config"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message string) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	if err := n.send(title, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// NotifyCompletion announces a finished interval.
func (n *Notifier) NotifyCompletion(mode domain.Mode, phrase string) error {
	if mode.IsWork() {
		return n.Notify("🍅 Pomodoro Complete!", fmt.Sprintf("%s +1 coin earned.", phrase))
	}
	return n.Notify("☕ Break Over!", fmt.Sprintf("Your %s is complete. Ready to focus?", mode.Label()))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
