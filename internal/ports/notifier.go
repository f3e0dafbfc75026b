package ports

import "github.com/xvierd/pomodomate/internal/domain"

// Notifier announces finished intervals outside the terminal.
// This is a driven port (implemented by the notification adapter).
type Notifier interface {
	// NotifyCompletion reports that an interval of the given mode finished.
	NotifyCompletion(mode domain.Mode, phrase string) error
}
