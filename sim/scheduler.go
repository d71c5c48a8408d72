package sim

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ErrInvalidDelay reports a negative suspension delay. A negative delay
// always indicates a caller bug (e.g. a misconfigured negative mean
// service time), so callers treat it as fatal.
var ErrInvalidDelay = errors.New("scheduling delay must be non-negative")

// Process is a logical thread of simulated activity (a customer's
// journey, or the arrival generator loop) scheduled cooperatively.
// Resume runs synchronously until the process either terminates or
// suspends again, at which point control returns to the scheduler loop.
type Process interface {
	Resume(s *Scheduler)
}

// event pairs a trigger time with the process to resume. seq is a
// monotonically increasing tie-breaker: among events with equal trigger
// times, insertion order wins, which keeps execution deterministic for
// a fixed random seed.
type event struct {
	at   float64
	seq  uint64
	proc Process
}

// eventQueue implements heap.Interface and orders events by
// (trigger time, insertion sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventQueue []*event

func (eq eventQueue) Len() int { return len(eq) }
func (eq eventQueue) Less(i, j int) bool {
	if eq[i].at != eq[j].at {
		return eq[i].at < eq[j].at
	}
	return eq[i].seq < eq[j].seq
}
func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Scheduler owns the virtual clock and the pending-event set. The clock
// is in simulated seconds and is monotonically non-decreasing; it has
// nothing to do with wall-clock time.
type Scheduler struct {
	clock  float64
	seq    uint64
	events eventQueue
}

// NewScheduler returns a Scheduler with the clock at zero and no
// pending events.
func NewScheduler() *Scheduler {
	return &Scheduler{events: make(eventQueue, 0)}
}

// Now returns the current virtual time in seconds.
func (s *Scheduler) Now() float64 {
	return s.clock
}

// Pending returns the number of scheduled events not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.events)
}

// ScheduleAfter schedules proc to resume delay seconds from now.
// Fails with ErrInvalidDelay if delay is negative.
func (s *Scheduler) ScheduleAfter(delay float64, proc Process) error {
	if delay < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDelay, delay)
	}
	ev := &event{at: s.clock + delay, seq: s.seq, proc: proc}
	s.seq++
	heap.Push(&s.events, ev)
	return nil
}

// RunUntil drives the event loop: it repeatedly pops the earliest event,
// advances the clock to its trigger time, and resumes the associated
// process. It stops once the earliest pending event would fire past the
// horizon, or the event queue is empty. Events past the horizon are left
// unprocessed.
func (s *Scheduler) RunUntil(horizon float64) {
	for len(s.events) > 0 {
		if s.events[0].at > horizon {
			break
		}
		ev := heap.Pop(&s.events).(*event)
		s.clock = ev.at
		logrus.Debugf("[t=%10.2f] resuming %T", s.clock, ev.proc)
		ev.proc.Resume(s)
	}
	logrus.Infof("[t=%10.2f] run ended, %d event(s) left past horizon", s.clock, len(s.events))
}
