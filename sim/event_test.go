package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bank-sim/bank-sim/sim/heap"
)

func TestEvent_AtMost_OrdersByTimeFirst(t *testing.T) {
	early := NewDepartureEvent(3)
	late := NewArrivalEvent(4, 1)
	assert.True(t, early.AtMost(late))
	assert.False(t, late.AtMost(early))
}

func TestEvent_AtMost_SameTime_ArrivalBeforeDeparture(t *testing.T) {
	dep := Event{Kind: Departure, Time: 5, seq: 0}
	arr := Event{Kind: Arrival, Time: 5, seq: 9}
	assert.True(t, arr.AtMost(dep))
	assert.False(t, dep.AtMost(arr))
}

func TestEvent_AtMost_SameTimeSameKind_BySchedulingOrder(t *testing.T) {
	first := Event{Kind: Arrival, Time: 5, Length: 9, seq: 1}
	second := Event{Kind: Arrival, Time: 5, Length: 1, seq: 2}
	assert.True(t, first.AtMost(second))
	assert.False(t, second.AtMost(first))
}

func TestEvent_AtMost_Reflexive(t *testing.T) {
	e := Event{Kind: Departure, Time: 7, seq: 3}
	assert.True(t, e.AtMost(e))
}

func TestEvent_PriorityQueue_DeterministicRegardlessOfInsertionOrder(t *testing.T) {
	// GIVEN the same four events scheduled in two different orders
	events := []Event{
		{Kind: Departure, Time: 10, seq: 0},
		{Kind: Arrival, Time: 10, Length: 2, seq: 1},
		{Kind: Arrival, Time: 3, Length: 1, seq: 2},
		{Kind: Arrival, Time: 10, Length: 5, seq: 3},
	}
	drain := func(order []int) []Event {
		pq := heap.NewPriorityQueue[Event]()
		for _, i := range order {
			require.True(t, pq.Enqueue(events[i]))
		}
		var out []Event
		for !pq.IsEmpty() {
			e, err := pq.Peek()
			require.NoError(t, err)
			require.NoError(t, pq.Dequeue())
			out = append(out, e)
		}
		return out
	}

	// WHEN both queues are drained
	a := drain([]int{0, 1, 2, 3})
	b := drain([]int{3, 2, 1, 0})

	// THEN both yield time, then arrivals, then scheduling order
	want := []Event{events[2], events[1], events[3], events[0]}
	assert.Equal(t, want, a)
	assert.Equal(t, want, b)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "arrival", Arrival.String())
	assert.Equal(t, "departure", Departure.String())
	assert.Equal(t, "EventKind(7)", EventKind(7).String())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "arrival@4(len=6)", NewArrivalEvent(4, 6).String())
	assert.Equal(t, "departure@10", NewDepartureEvent(10).String())
}
