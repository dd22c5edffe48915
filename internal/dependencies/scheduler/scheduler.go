package scheduler

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback. Cancel stops the callback from
// firing (or from firing again, for repeating tasks); it is safe to call
// more than once.
type Task interface {
	Cancel()
}

// Scheduler schedules cancelable timer callbacks. A session keeps handles
// to its outstanding tasks so discarding the session can cancel them
// before they mutate superseded state.
type Scheduler interface {
	// AfterFunc runs f once after d has elapsed
	AfterFunc(d time.Duration, f func()) Task

	// Every runs f repeatedly with period d until the task is canceled
	Every(d time.Duration, f func()) Task
}

// RealScheduler implements Scheduler on top of the runtime timers
type RealScheduler struct{}

// New creates a new RealScheduler
func New() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc runs f once after d on a timer goroutine
func (s *RealScheduler) AfterFunc(d time.Duration, f func()) Task {
	return &timerTask{timer: time.AfterFunc(d, f)}
}

// Every runs f on every tick of a d-period ticker until canceled
func (s *RealScheduler) Every(d time.Duration, f func()) Task {
	t := &tickerTask{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				f()
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Cancel() {
	t.timer.Stop()
}

type tickerTask struct {
	stop chan struct{}
	once sync.Once
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}
