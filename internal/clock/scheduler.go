package clock

import (
	"sort"
	"sync"
	"time"
)

// Task is a pending callback.
type Task interface {
	// Cancel prevents the callback from running. It returns false if the
	// callback already ran or was already cancelled.
	Cancel() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Task
}

// TimerScheduler schedules on real time using the runtime timers.
type TimerScheduler struct{}

// After runs fn on its own goroutine once d has elapsed.
func (TimerScheduler) After(d time.Duration, fn func()) Task {
	return timerTask{t: time.AfterFunc(d, fn)}
}

type timerTask struct {
	t *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.t.Stop()
}

// ManualScheduler is a Scheduler driven by explicit Advance calls, for
// deterministic tests and replays.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	s        *ManualScheduler
	due      time.Duration
	seq      int
	fn       func()
	finished bool
}

// After queues fn to run once the scheduler has advanced by d.
func (m *ManualScheduler) After(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{s: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves time forward and runs every task that became due, in due order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTask
	pending := m.tasks[:0]
	for _, t := range m.tasks {
		switch {
		case t.finished:
		case t.due <= m.now:
			t.finished = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	m.tasks = pending
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.finished {
			n++
		}
	}
	return n
}

func (t *manualTask) Cancel() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.finished {
		return false
	}
	t.finished = true
	return true
}
