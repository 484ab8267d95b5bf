// Package sim provides the discrete-event simulation engine for a single-teller bank.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the Event value (Arrival, Departure) and its ordering
//   - queue.go: the FIFO WaitLine of customers the teller could not take yet
//   - simulator.go: the event loop and the arrival/departure handlers
//
// # Architecture
//
// The sim package owns the simulation state; supporting code lives in
// sub-packages:
//   - sim/heap/: generic min binary heap and the PriorityQueue built on it
//   - sim/workload/: parsing and seeded generation of (arrival time, transaction length) pairs
//   - sim/trace/: optional per-event trace recording
//
// # Event Ordering
//
// Events pop by time. Events sharing a time pop arrivals first, then in the
// order they were scheduled, so a run is fully determined by its input.
//
// # Wait Accounting
//
// A customer who finds the teller busy (or others waiting) is charged
// NextAvailableTime - arrival time on arrival. The reported average is
// TimeWaited*100 / Processed in integer arithmetic, divided by 100, so it is
// truncated, not rounded, to two decimals.
package sim
