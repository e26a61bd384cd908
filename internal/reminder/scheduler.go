// Package reminder arms one-shot timers for task reminders. It knows
// nothing about the store: callers hand it a task snapshot whenever the
// collection changes and it reconciles by cancelling everything and
// rearming from scratch.
package reminder

import (
	"sync"
	"time"

	"github.com/SamirAliWebDev/zenith/internal/model"
)

// Scheduler fires the notify callback when a task's reminder comes due.
// Timer callbacks run on their own goroutine, so the callback must be safe
// to call from there (the binary routes it into the UI loop).
type Scheduler struct {
	mu     sync.Mutex
	timers []*time.Timer
	notify func(model.Task)
	now    func() time.Time
}

// New creates a scheduler delivering reminders through notify.
func New(notify func(model.Task)) *Scheduler {
	return &Scheduler{notify: notify, now: time.Now}
}

// Reschedule cancels every armed timer and arms fresh ones from the given
// snapshot. Only tasks with a future reminder that are not completed get a
// timer; rearming wholesale avoids duplicate or stale notifications.
func (s *Scheduler) Reschedule(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	now := s.now()
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		at, ok := t.ReminderAt()
		if !ok || !at.After(now) {
			continue
		}
		task := t
		s.timers = append(s.timers, time.AfterFunc(at.Sub(now), func() {
			s.notify(task)
		}))
	}
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all armed timers. Used at teardown so nothing fires after
// the program exits the screen.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *Scheduler) cancelLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
