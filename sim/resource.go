package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity reports a Resource constructed with a non-positive
// capacity. Checked at construction, never at acquire time.
var ErrInvalidCapacity = errors.New("resource capacity must be positive")

// Resource models a capacity-limited server (a teller, or a pooled bank
// of tellers) with a FIFO wait queue. A process that cannot be granted
// a unit of capacity immediately joins the queue and suspends; grants
// are handed out strictly in arrival order, with no priority and no
// preemption. Capacity is never reduced, so a waiter always eventually
// obtains its grant.
type Resource struct {
	capacity int
	inUse    int
	waiters  []Process // FIFO, insertion order = arrival order
}

// NewResource returns a Resource with the given capacity.
// Fails with ErrInvalidCapacity if capacity <= 0.
func NewResource(capacity int) (*Resource, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Resource{capacity: capacity}, nil
}

// Acquire claims one unit of capacity for proc. It returns true when the
// grant is immediate; otherwise proc is appended to the wait queue and
// must suspend until Release wakes it.
func (r *Resource) Acquire(proc Process) bool {
	if r.inUse < r.capacity {
		r.inUse++
		return true
	}
	r.waiters = append(r.waiters, proc)
	return false
}

// Release returns one unit of capacity. If any process is waiting, the
// head of the queue is granted the freed unit and scheduled to resume at
// the current clock time.
func (r *Resource) Release(s *Scheduler) {
	if r.inUse <= 0 {
		panic("Release: no grants outstanding")
	}
	r.inUse--
	if len(r.waiters) == 0 {
		return
	}
	head := r.waiters[0]
	r.waiters = r.waiters[1:]
	r.inUse++
	if err := s.ScheduleAfter(0, head); err != nil {
		panic(err) // zero delay is never invalid
	}
}

// QueueLen returns the number of processes waiting for a grant.
func (r *Resource) QueueLen() int {
	return len(r.waiters)
}

// InUse returns the number of capacity units currently granted.
func (r *Resource) InUse() int {
	return r.inUse
}

// Capacity returns the configured capacity.
func (r *Resource) Capacity() int {
	return r.capacity
}
