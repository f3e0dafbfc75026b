package services

import (
	"context"
	"time"

	"github.com/xvierd/pomodomate/internal/domain"
)

// RewardService applies finished work intervals to the ledger and persists it.
type RewardService struct {
	store  *StateStore
	ledger domain.RewardLedger
	now    func() time.Time
}

// NewRewardService creates a reward service starting from ledger.
func NewRewardService(store *StateStore, ledger domain.RewardLedger, now func() time.Time) *RewardService {
	if now == nil {
		now = time.Now
	}
	return &RewardService{store: store, ledger: ledger, now: now}
}

// Ledger returns the current reward state.
func (r *RewardService) Ledger() domain.RewardLedger {
	return r.ledger
}

// RecordCompletion awards a coin and updates the streak for today.
func (r *RewardService) RecordCompletion(ctx context.Context) domain.RewardLedger {
	streakChanged := r.ledger.RecordCompletion(r.now())

	r.store.SaveCoins(ctx, r.ledger.Coins)
	if streakChanged {
		r.store.SaveStreak(ctx, r.ledger.StreakDays, r.ledger.LastCompletionDate)
	}
	return r.ledger
}
