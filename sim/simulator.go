// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/bank-sim/bank-sim/sim/heap"
	"github.com/bank-sim/bank-sim/sim/trace"
)

// ErrCapacityExhausted is returned when a bounded event queue rejects an event.
var ErrCapacityExhausted = errors.New("event queue capacity exhausted")

// Simulator is the core object that holds simulation time, teller state, and the event loop.
type Simulator struct {
	Clock int64
	// EventQueue holds every pending arrival and departure, earliest first
	EventQueue *heap.PriorityQueue[Event]
	// WaitLine holds customers who arrived while the teller was busy
	WaitLine *WaitLine
	// TellerAvailable is true when the teller is idle and nobody is waiting.
	// It only becomes true again when a departure finds the wait line empty.
	TellerAvailable bool
	// NextAvailableTime is the projected time the teller clears every
	// customer accepted so far.
	NextAvailableTime int64
	Metrics           *Metrics
	// Trace is nil unless event tracing was requested
	Trace *trace.SimulationTrace

	out     io.Writer // progress lines and banners
	nextSeq uint64
	steps   int
}

// NewSimulator builds a simulator with an idle teller and an empty event queue.
// Progress lines are written to out.
func NewSimulator(cfg Config, out io.Writer) *Simulator {
	var eq *heap.PriorityQueue[Event]
	if cfg.Capacity > 0 {
		eq = heap.NewBoundedPriorityQueue[Event](cfg.Capacity)
	} else {
		eq = heap.NewPriorityQueue[Event]()
	}
	s := &Simulator{
		Clock:             0,
		EventQueue:        eq,
		WaitLine:          &WaitLine{},
		TellerAvailable:   true,
		NextAvailableTime: 0,
		Metrics:           NewMetrics(),
		out:               out,
	}
	if trace.TraceLevel(cfg.TraceLevel) == trace.TraceLevelEvents {
		s.Trace = trace.NewSimulationTrace(trace.TraceLevelEvents)
	}
	return s
}

// Schedule pushes an event into the EventQueue, stamping its scheduling order.
func (sim *Simulator) Schedule(ev Event) error {
	ev.seq = sim.nextSeq
	sim.nextSeq++
	if !sim.EventQueue.Enqueue(ev) {
		return fmt.Errorf("scheduling %s: %w", ev, ErrCapacityExhausted)
	}
	return nil
}

// InjectArrival schedules a customer arriving at time with a transaction of
// length ticks. Every injected arrival counts toward Metrics.Processed.
func (sim *Simulator) InjectArrival(time, length int64) error {
	if err := sim.Schedule(NewArrivalEvent(time, length)); err != nil {
		return err
	}
	sim.Metrics.Processed++
	return nil
}

// Steps returns the number of events handled so far.
func (sim *Simulator) Steps() int {
	return sim.steps
}

// Run drains the EventQueue in time order, dispatching each event to its handler.
func (sim *Simulator) Run() error {
	fmt.Fprintln(sim.out, "Simulation Begins")
	for !sim.EventQueue.IsEmpty() {
		// get the next event to be simulated
		ev, err := sim.EventQueue.Peek()
		if err != nil {
			return err
		}
		if err := sim.EventQueue.Dequeue(); err != nil {
			return err
		}
		sim.Clock = ev.Time
		sim.steps++
		logrus.Debugf("[tick %07d] Executing %s", sim.Clock, ev)

		switch ev.Kind {
		case Arrival:
			err = sim.processArrival(ev)
		case Departure:
			err = sim.processDeparture(ev)
		default:
			err = fmt.Errorf("unknown event kind %d at tick %d", int(ev.Kind), ev.Time)
		}
		if err != nil {
			return err
		}
		sim.recordEvent(ev)
	}
	sim.Metrics.SimEndedTime = sim.Clock
	fmt.Fprintln(sim.out, "Simulation Ends")
	logrus.Infof("[tick %07d] Simulation ended after %d events", sim.Clock, sim.steps)
	return nil
}

// processArrival serves the customer at once if the teller is free and
// nobody is waiting; otherwise charges the projected wait and queues them.
func (sim *Simulator) processArrival(current Event) error {
	fmt.Fprintf(sim.out, "Processing an arrival event at time:   %d\n", current.Time)
	sim.Metrics.ArrivalsProcessed++

	if sim.WaitLine.IsEmpty() && sim.TellerAvailable {
		departureTime := current.Time + current.Length
		sim.NextAvailableTime = departureTime
		if err := sim.Schedule(NewDepartureEvent(departureTime)); err != nil {
			return err
		}
		sim.TellerAvailable = false
		sim.recordService(current, current.Time, true)
		return nil
	}

	wait := sim.NextAvailableTime - current.Time
	sim.Metrics.TimeWaited += wait
	sim.Metrics.Waits = append(sim.Metrics.Waits, wait)
	sim.NextAvailableTime += current.Length
	sim.WaitLine.Enqueue(current)
	if n := sim.WaitLine.Len(); n > sim.Metrics.MaxWaitLineLen {
		sim.Metrics.MaxWaitLineLen = n
	}
	logrus.Debugf("[tick %07d] customer queued, wait=%d, line=%d", current.Time, wait, sim.WaitLine.Len())
	return nil
}

// processDeparture hands the teller to the head of the wait line, or marks
// the teller available when the line is empty. The teller stays busy while
// customers are waiting.
func (sim *Simulator) processDeparture(current Event) error {
	fmt.Fprintf(sim.out, "Processing a departure event at time:  %d\n", current.Time)
	sim.Metrics.DeparturesProcessed++

	customer, ok := sim.WaitLine.Dequeue()
	if !ok {
		sim.TellerAvailable = true
		return nil
	}
	departureTime := current.Time + customer.Length
	if err := sim.Schedule(NewDepartureEvent(departureTime)); err != nil {
		return err
	}
	sim.recordService(customer, current.Time, false)
	return nil
}

func (sim *Simulator) recordEvent(ev Event) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordEvent(trace.EventRecord{
		Kind:            ev.Kind.String(),
		Clock:           ev.Time,
		Length:          ev.Length,
		WaitLineLen:     sim.WaitLine.Len(),
		TellerAvailable: sim.TellerAvailable,
	})
}

func (sim *Simulator) recordService(customer Event, start int64, immediate bool) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordService(trace.ServiceRecord{
		ArrivalTime:  customer.Time,
		ServiceStart: start,
		Wait:         start - customer.Time,
		Immediate:    immediate,
	})
}
