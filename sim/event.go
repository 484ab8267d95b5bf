package sim

import "fmt"

// EventKind distinguishes the two things that can happen at the bank.
type EventKind int

const (
	// Arrival marks a customer joining the system, carrying a service length.
	Arrival EventKind = iota
	// Departure marks the teller finishing with a customer.
	Departure
)

// kindPriority orders events that share a timestamp (lower first).
// Arrivals at time t are seen before the departure freeing the teller at t.
var kindPriority = map[EventKind]int{
	Arrival:   1,
	Departure: 2,
}

func (k EventKind) String() string {
	switch k {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is the value stored in the simulator's priority queue.
type Event struct {
	Kind   EventKind
	Time   int64 // simulation clock value
	Length int64 // service duration; meaningful for arrivals only

	seq uint64 // scheduling order, assigned by Simulator.Schedule
}

// NewArrivalEvent returns an arrival at time needing length ticks of service.
func NewArrivalEvent(time, length int64) Event {
	return Event{Kind: Arrival, Time: time, Length: length}
}

// NewDepartureEvent returns a departure at time.
func NewDepartureEvent(time int64) Event {
	return Event{Kind: Departure, Time: time}
}

// AtMost orders events by time, then kind priority, then scheduling order.
func (e Event) AtMost(other Event) bool {
	if e.Time != other.Time {
		return e.Time < other.Time
	}
	if pe, po := kindPriority[e.Kind], kindPriority[other.Kind]; pe != po {
		return pe < po
	}
	return e.seq <= other.seq
}

func (e Event) String() string {
	if e.Kind == Arrival {
		return fmt.Sprintf("%s@%d(len=%d)", e.Kind, e.Time, e.Length)
	}
	return fmt.Sprintf("%s@%d", e.Kind, e.Time)
}
