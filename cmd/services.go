package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomodomate/internal/adapters/notification"
	"github.com/xvierd/pomodomate/internal/adapters/storage"
	"github.com/xvierd/pomodomate/internal/config"
	"github.com/xvierd/pomodomate/internal/logging"
	"github.com/xvierd/pomodomate/internal/ports"
	"github.com/xvierd/pomodomate/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	store    ports.KeyValueStore
	notifier *notification.Notifier
	logger   *log.Logger
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	app.logger = logging.NewStderr(app.config.Log.Level)
	if err != nil {
		app.logger.Warn("using default configuration", "err", err)
	}

	app.notifier = notification.New(&app.config.Notifications)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// An unusable database degrades to a session-only store.
	app.store, err = storage.New(dbPath)
	if err != nil {
		app.logger.Warn("progress will not be saved", "db", dbPath, "err", err)
		app.store, err = storage.NewMemory()
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	return nil
}

// newController builds a timer controller on scheduler from the persisted state.
func (a appDeps) newController(ctx context.Context, scheduler ports.Scheduler, logger *log.Logger) *services.PomodoroService {
	return services.NewPomodoroService(ctx, services.Deps{
		Store:     a.store,
		Scheduler: scheduler,
		Notifier:  a.notifier,
		Logger:    logger,
		Defaults:  a.config.DefaultSettings(),
	})
}

// stateStore gives read access to the persisted entries without a timer.
func (a appDeps) stateStore() *services.StateStore {
	return services.NewStateStore(a.store, a.logger)
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.store != nil {
		err := app.store.Close()
		app.store = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
