package sim

import "github.com/sirupsen/logrus"

// ArrivalGenerator spawns Customer processes at exponential intervals.
// Each resumption admits one customer, routes it through the policy,
// and reschedules the generator after the next interarrival gap. The
// loop has no internal termination condition; it stops running when the
// scheduler's horizon leaves its next resumption unprocessed.
type ArrivalGenerator struct {
	nextID  int
	tellers []*Resource
	policy  RoutingPolicy
	stream  *VariateStream
	table   []TransactionType
	samples *WaitSamples
}

// Start schedules the first arrival one interarrival gap from now.
func (g *ArrivalGenerator) Start(s *Scheduler) error {
	return s.ScheduleAfter(g.stream.DrawInterarrival(), g)
}

// Resume admits one customer and reschedules the generator. The teller
// choice happens here, at dispatch time, and is final.
func (g *ArrivalGenerator) Resume(s *Scheduler) {
	g.nextID++
	c := &Customer{
		id:      g.nextID,
		teller:  g.policy.Pick(g.tellers),
		stream:  g.stream,
		table:   g.table,
		samples: g.samples,
	}
	logrus.Debugf("[t=%10.2f] customer %d arrives", s.Now(), g.nextID)
	c.Start(s)

	if err := s.ScheduleAfter(g.stream.DrawInterarrival(), g); err != nil {
		panic(err) // exponential draws are never negative
	}
}
