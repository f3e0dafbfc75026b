// Package services implements the timer, reward and settings use cases.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// Persisted keys. Each is stored as its own JSON value.
const (
	KeySettings           = "settings"
	KeyCoins              = "coins"
	KeyStreakDays         = "streakDays"
	KeyLastCompletionDate = "lastCompletionDate"
)

// StateStore reads and writes the persisted entries on a key-value store.
// Writes are best-effort: failures are logged and swallowed so in-memory
// state stays authoritative for the session.
type StateStore struct {
	kv     ports.KeyValueStore
	logger *log.Logger
}

// NewStateStore creates a state store over kv. A nil logger discards.
func NewStateStore(kv ports.KeyValueStore, logger *log.Logger) *StateStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &StateStore{kv: kv, logger: logger}
}

// LoadSettings returns the stored settings, or defaults when the entry is
// missing or unreadable. Stored values are coerced into their bounds.
func (s *StateStore) LoadSettings(ctx context.Context, defaults domain.Settings) domain.Settings {
	settings := defaults
	if !s.load(ctx, KeySettings, &settings) {
		return defaults.Normalize()
	}
	return settings.Normalize()
}

// LoadRewards returns the stored reward ledger. Each entry falls back to its
// zero value independently.
func (s *StateStore) LoadRewards(ctx context.Context) domain.RewardLedger {
	var ledger domain.RewardLedger
	s.load(ctx, KeyCoins, &ledger.Coins)
	s.load(ctx, KeyStreakDays, &ledger.StreakDays)
	s.load(ctx, KeyLastCompletionDate, &ledger.LastCompletionDate)
	return ledger.Normalize()
}

// SaveSettings persists the settings entry.
func (s *StateStore) SaveSettings(ctx context.Context, settings domain.Settings) {
	s.save(ctx, KeySettings, settings)
}

// SaveCoins persists the coin count.
func (s *StateStore) SaveCoins(ctx context.Context, coins int) {
	s.save(ctx, KeyCoins, coins)
}

// SaveStreak persists the streak counter and the date it was last extended.
func (s *StateStore) SaveStreak(ctx context.Context, days int, lastCompletionDate string) {
	s.save(ctx, KeyStreakDays, days)
	s.save(ctx, KeyLastCompletionDate, lastCompletionDate)
}

// Clear removes every persisted entry.
func (s *StateStore) Clear(ctx context.Context) error {
	if err := s.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}

func (s *StateStore) load(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		s.logger.Warn("failed to read persisted state", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("ignoring corrupt persisted state", "key", key, "err", err)
		return false
	}
	return true
}

func (s *StateStore) save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode state", "key", key, "err", err)
		return
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		s.logger.Warn("failed to persist state", "key", key, "err", err)
	}
}
