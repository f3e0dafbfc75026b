package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/xvierd/pomodomate/internal/adapters/clock"
	"github.com/xvierd/pomodomate/internal/adapters/storage"
	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

var testToday = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)

func setupTestStorage(t *testing.T) ports.KeyValueStore {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

type testService struct {
	*PomodoroService
	fake     *clock.Fake
	notifier *recordingNotifier
	logs     *bytes.Buffer
}

func newTestService(t *testing.T, kv ports.KeyValueStore) *testService {
	t.Helper()
	fake := clock.NewFake()
	notifier := &recordingNotifier{}
	logs := &bytes.Buffer{}

	svc := NewPomodoroService(context.Background(), Deps{
		Store:     kv,
		Scheduler: fake,
		Random:    NewSeededRandom(7),
		Notifier:  notifier,
		Logger:    log.New(logs),
		Now:       func() time.Time { return testToday },
	})
	return &testService{PomodoroService: svc, fake: fake, notifier: notifier, logs: logs}
}

// completeCurrent runs the active interval to zero.
func (ts *testService) completeCurrent() {
	ts.Start()
	ts.fake.Advance(time.Duration(ts.Snapshot().TotalSeconds) * time.Second)
}

type recordingNotifier struct {
	modes []domain.Mode
	err   error
}

func (n *recordingNotifier) NotifyCompletion(mode domain.Mode, _ string) error {
	n.modes = append(n.modes, mode)
	return n.err
}

var errBrokenStore = errors.New("disk on fire")

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errBrokenStore }
func (brokenStore) Put(context.Context, string, []byte) error  { return errBrokenStore }
func (brokenStore) Clear(context.Context) error                { return errBrokenStore }
func (brokenStore) Close() error                               { return nil }

// sequenceRandom returns the given values in order, then repeats the last one.
type sequenceRandom struct {
	values []int
	next   int
}

func (s *sequenceRandom) Intn(n int) int {
	v := s.values[len(s.values)-1]
	if s.next < len(s.values) {
		v = s.values[s.next]
		s.next++
	}
	return v % n
}
