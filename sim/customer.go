package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// customerState is the tagged variant over a customer's lifecycle.
type customerState int

const (
	customerArrived customerState = iota
	customerQueueing
	customerInService
	customerDeparted
)

// Customer is the process for one customer's journey:
// Arrived → Queueing → InService → Departed. The state tag plus the
// arrival time are all the context needed to resume after a suspension,
// which is how the coroutine-style flow of the model maps onto the
// event-driven scheduler. A departed customer is never resumed again.
type Customer struct {
	id      int
	state   customerState
	arrival float64
	txnType int
	teller  *Resource

	stream  *VariateStream
	table   []TransactionType
	samples *WaitSamples
}

// Start begins the journey at the current clock time: record arrival,
// draw the transaction type, and request the routed teller. If the grant
// is immediate the customer enters service with zero wait; otherwise it
// suspends in the teller's FIFO queue.
func (c *Customer) Start(s *Scheduler) {
	c.arrival = s.Now()
	c.txnType = c.stream.DrawTransactionType(c.table)
	c.state = customerQueueing
	if c.teller.Acquire(c) {
		c.beginService(s)
		return
	}
	logrus.Debugf("[t=%10.2f] customer %d waiting (queue len %d)", s.Now(), c.id, c.teller.QueueLen())
}

// Resume is called by the scheduler when the teller grant arrives
// (Queueing) or the service hold elapses (InService).
func (c *Customer) Resume(s *Scheduler) {
	switch c.state {
	case customerQueueing:
		c.beginService(s)
	case customerInService:
		c.teller.Release(s)
		c.state = customerDeparted
		logrus.Debugf("[t=%10.2f] customer %d departs", s.Now(), c.id)
	default:
		panic(fmt.Sprintf("customer %d resumed in state %d", c.id, c.state))
	}
}

// beginService runs at the instant the grant is obtained. Exactly one
// wait sample is recorded here -- queueing delay only, excluding the
// service time that follows. The customer then holds the teller for the
// drawn service duration.
func (c *Customer) beginService(s *Scheduler) {
	wait := s.Now() - c.arrival
	c.samples.Append(wait)
	c.state = customerInService

	hold := c.stream.DrawServiceTime(c.table, c.txnType)
	logrus.Debugf("[t=%10.2f] customer %d starts service (waited %.2fs, type %d, hold %.2fs)",
		s.Now(), c.id, wait, c.txnType, hold)
	if err := s.ScheduleAfter(hold, c); err != nil {
		panic(err) // exponential draws are never negative
	}
}
