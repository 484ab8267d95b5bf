// Package trace provides per-event trace recording for bank simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures the simulator state right after one event was handled.
type EventRecord struct {
	Kind            string // "arrival" or "departure"
	Clock           int64
	Length          int64 // service length for arrivals, 0 for departures
	WaitLineLen     int
	TellerAvailable bool
}

// ServiceRecord captures when a customer reached the teller.
type ServiceRecord struct {
	ArrivalTime  int64
	ServiceStart int64
	Wait         int64 // ServiceStart - ArrivalTime
	Immediate    bool  // true if the teller was free and nobody was waiting
}
