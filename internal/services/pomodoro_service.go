package services

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
	"github.com/xvierd/pomodomate/internal/timer"
)

// Deps are the collaborators a PomodoroService is built from.
type Deps struct {
	Store     ports.KeyValueStore
	Scheduler ports.Scheduler
	Random    ports.RandomSource
	Notifier  ports.Notifier
	Logger    *log.Logger
	Now       func() time.Time
	// Defaults are used until the user saves settings of their own.
	Defaults domain.Settings
}

// PomodoroService handles the user intents of the timer and the side effects
// of a finished interval.
type PomodoroService struct {
	engine   *timer.Engine
	modes    *ModeController
	rewards  *RewardService
	settings *SettingsService
	phrases  *PhrasePicker

	scheduler ports.Scheduler
	notifier  ports.Notifier
	logger    *log.Logger

	motivational      string
	celebration       domain.Celebration
	celebrationHandle ports.TickHandle
	settingsOpen      bool

	completionHooks []func(domain.Mode)
}

// Ensure PomodoroService implements ports.PomodoroController.
var _ ports.PomodoroController = (*PomodoroService)(nil)

// NewPomodoroService loads persisted state and returns a service in work mode,
// stopped at the full work duration.
func NewPomodoroService(ctx context.Context, deps Deps) *PomodoroService {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defaults := deps.Defaults
	if defaults == (domain.Settings{}) {
		defaults = domain.DefaultSettings()
	}

	store := NewStateStore(deps.Store, logger)
	engine := timer.New(deps.Scheduler)
	modes := NewModeController(engine, store.LoadSettings(ctx, defaults))

	s := &PomodoroService{
		engine:    engine,
		modes:     modes,
		rewards:   NewRewardService(store, store.LoadRewards(ctx), deps.Now),
		settings:  NewSettingsService(store, modes),
		phrases:   NewPhrasePicker(deps.Random),
		scheduler: deps.Scheduler,
		notifier:  deps.Notifier,
		logger:    logger,
	}
	s.motivational = s.phrases.Motivational()
	engine.OnComplete(s.handleCompletion)
	return s
}

// OnCompletion registers fn to run after each finished interval.
func (s *PomodoroService) OnCompletion(fn func(domain.Mode)) {
	s.completionHooks = append(s.completionHooks, fn)
}

// Snapshot returns the state to render.
func (s *PomodoroService) Snapshot() domain.CurrentState {
	return domain.CurrentState{
		Mode:               s.modes.Mode(),
		RemainingSeconds:   s.engine.Remaining(),
		TotalSeconds:       s.modes.TotalSeconds(),
		Running:            s.engine.Running(),
		Settings:           s.modes.Settings(),
		Rewards:            s.rewards.Ledger(),
		MotivationalPhrase: s.motivational,
		Celebration:        s.celebration,
		SettingsOpen:       s.settingsOpen,
	}
}

// Start begins or resumes the countdown.
func (s *PomodoroService) Start() {
	s.engine.Start()
}

// Pause halts the countdown.
func (s *PomodoroService) Pause() {
	s.engine.Pause()
}

// Toggle flips between running and paused.
func (s *PomodoroService) Toggle() {
	s.engine.Toggle()
}

// Reset restores the active mode's full duration.
func (s *PomodoroService) Reset() {
	s.modes.ResetTimer()
}

// SetMode switches mode. Entering work mode picks a fresh motivational phrase.
func (s *PomodoroService) SetMode(mode domain.Mode) {
	s.modes.SetMode(mode)
	if mode.IsWork() {
		s.motivational = s.phrases.Motivational()
	}
}

// OpenSettings shows the settings editor.
func (s *PomodoroService) OpenSettings() {
	s.settingsOpen = true
}

// CloseSettings hides the settings editor.
func (s *PomodoroService) CloseSettings() {
	s.settingsOpen = false
}

// SaveSettings applies raw durations and closes the editor.
func (s *PomodoroService) SaveSettings(ctx context.Context, input domain.SettingsInput) domain.Settings {
	saved := s.settings.Save(ctx, input)
	s.settingsOpen = false
	s.logger.Debug("settings saved", "work", saved.Work, "short_break", saved.ShortBreak, "long_break", saved.LongBreak)
	return saved
}

func (s *PomodoroService) handleCompletion() {
	ctx := context.Background()
	mode := s.modes.Mode()

	awarded := false
	if mode.IsWork() {
		s.rewards.RecordCompletion(ctx)
		s.motivational = s.phrases.Motivational()
		awarded = true
	}

	phrase := s.phrases.Celebration()
	s.showCelebration(phrase, awarded)

	if s.notifier != nil {
		if err := s.notifier.NotifyCompletion(mode, phrase); err != nil {
			s.logger.Warn("failed to send notification", "err", err)
		}
	}

	ledger := s.rewards.Ledger()
	s.logger.Info("interval complete", "mode", mode, "coins", ledger.Coins, "streak", ledger.StreakDays)

	for _, hook := range s.completionHooks {
		hook(mode)
	}
}

// showCelebration displays the overlay for domain.CelebrationWindow.
// A newer completion restarts the window.
func (s *PomodoroService) showCelebration(phrase string, coinAwarded bool) {
	if s.celebrationHandle != 0 {
		s.scheduler.Cancel(s.celebrationHandle)
	}
	s.celebration = domain.Celebration{Visible: true, Phrase: phrase, CoinAwarded: coinAwarded}

	var handle ports.TickHandle
	handle = s.scheduler.ScheduleTick(func() {
		if handle != s.celebrationHandle {
			return
		}
		s.celebrationHandle = 0
		s.celebration = domain.Celebration{}
	}, domain.CelebrationWindow)
	s.celebrationHandle = handle
}
