package mocks

import (
	"time"

	"github.com/mfield/memorymatch/internal/dependencies/scheduler"
)

// MockTask is a scheduled callback captured by MockScheduler. Tests fire it
// explicitly instead of waiting for wall-clock time.
type MockTask struct {
	Duration time.Duration
	fn       func()
	canceled bool
}

// Cancel marks the task canceled. Fire still runs the callback so tests
// can assert that consumers tolerate a stale delivery.
func (t *MockTask) Cancel() {
	t.canceled = true
}

// Canceled reports whether Cancel was called
func (t *MockTask) Canceled() bool {
	return t.canceled
}

// Fire runs the task's callback. For repeating tasks, call Fire once per
// simulated tick. Canceled tasks still run, modeling a callback already
// in flight when Cancel landed; consumers guard against that themselves.
func (t *MockTask) Fire() {
	t.fn()
}

// MockScheduler is a mock implementation of Scheduler for testing. It
// records scheduled tasks without starting any timers.
type MockScheduler struct {
	AfterTasks []*MockTask
	EveryTasks []*MockTask
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{}
}

// AfterFunc records a one-shot task
func (s *MockScheduler) AfterFunc(d time.Duration, f func()) scheduler.Task {
	t := &MockTask{Duration: d, fn: f}
	s.AfterTasks = append(s.AfterTasks, t)
	return t
}

// Every records a repeating task
func (s *MockScheduler) Every(d time.Duration, f func()) scheduler.Task {
	t := &MockTask{Duration: d, fn: f}
	s.EveryTasks = append(s.EveryTasks, t)
	return t
}

// LastAfter returns the most recently scheduled one-shot task, or nil
func (s *MockScheduler) LastAfter() *MockTask {
	if len(s.AfterTasks) == 0 {
		return nil
	}
	return s.AfterTasks[len(s.AfterTasks)-1]
}

// LastEvery returns the most recently scheduled repeating task, or nil
func (s *MockScheduler) LastEvery() *MockTask {
	if len(s.EveryTasks) == 0 {
		return nil
	}
	return s.EveryTasks[len(s.EveryTasks)-1]
}
