package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomodomate/internal/ports"
)

// scheduledTickMsg carries an expired timer back onto the Bubbletea loop.
type scheduledTickMsg struct {
	handle ports.TickHandle
}

type scheduledTick struct {
	timer    *time.Timer
	callback func()
}

// Scheduler implements ports.Scheduler on top of a tea.Program.
// Expired timers are delivered as messages and their callbacks run inside
// Model.Update, so the controller only ever sees the Bubbletea goroutine.
type Scheduler struct {
	mu      sync.Mutex
	next    ports.TickHandle
	pending map[ports.TickHandle]*scheduledTick
	send    func(tea.Msg)
	backlog []tea.Msg
}

// Ensure Scheduler implements ports.Scheduler.
var _ ports.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler. Messages are buffered until Attach.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[ports.TickHandle]*scheduledTick)}
}

// Attach routes expirations to program.
func (s *Scheduler) Attach(program *tea.Program) {
	s.attach(program.Send)
}

func (s *Scheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	backlog := s.backlog
	s.backlog = nil
	s.mu.Unlock()

	for _, msg := range backlog {
		send(msg)
	}
}

// ScheduleTick implements ports.Scheduler.
func (s *Scheduler) ScheduleTick(callback func(), after time.Duration) ports.TickHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	handle := s.next
	s.pending[handle] = &scheduledTick{
		callback: callback,
		timer:    time.AfterFunc(after, func() { s.post(scheduledTickMsg{handle: handle}) }),
	}
	return handle
}

// Cancel implements ports.Scheduler.
func (s *Scheduler) Cancel(handle ports.TickHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tick, ok := s.pending[handle]; ok {
		tick.timer.Stop()
		delete(s.pending, handle)
	}
}

// Stop cancels everything still pending.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for handle, tick := range s.pending {
		tick.timer.Stop()
		delete(s.pending, handle)
	}
}

// fire runs the callback behind handle, unless it was cancelled meanwhile.
func (s *Scheduler) fire(handle ports.TickHandle) {
	s.mu.Lock()
	tick, ok := s.pending[handle]
	delete(s.pending, handle)
	s.mu.Unlock()

	if ok {
		tick.callback()
	}
}

func (s *Scheduler) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	if send == nil {
		s.backlog = append(s.backlog, msg)
	}
	s.mu.Unlock()

	if send != nil {
		send(msg)
	}
}
