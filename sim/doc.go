// Package sim provides the discrete-event simulation core for the bank
// teller queueing model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - scheduler.go: the virtual clock, the pending-event heap, and the RunUntil loop
//   - resource.go: the capacity-limited teller with its FIFO wait queue
//   - customer.go: the customer state machine (Arrived → Queueing → InService → Departed)
//
// # Architecture
//
// Execution is single-threaded cooperative scheduling. A Process runs
// synchronously when the Scheduler resumes it and yields control back by
// either scheduling its own resumption after a delay (a timed wait) or
// joining a Resource's wait queue (an acquire that cannot be granted
// immediately). Two events scheduled for the same virtual time fire in
// the order they were scheduled, so every run with the same seed and
// configuration is bit-for-bit reproducible.
//
// The Driver (driver.go) wires a Config into a Scheduler, the teller
// Resource topology, and an ArrivalGenerator, then runs to the horizon
// and collects one wait sample per customer that reached service start.
package sim
