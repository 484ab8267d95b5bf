package sim

import (
	"testing"
)

func TestWaitLine_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a line with customers [A, B]
	wl := &WaitLine{}
	a := NewArrivalEvent(1, 3)
	b := NewArrivalEvent(2, 4)
	wl.Enqueue(a)
	wl.Enqueue(b)

	// WHEN Peek() is called
	got, ok := wl.Peek()

	// THEN it returns the front customer without removing it
	if !ok || got != a {
		t.Errorf("Peek: got %v (ok=%v), want %v", got, ok, a)
	}
	if wl.Len() != 2 {
		t.Errorf("Peek modified line length: got %d, want 2", wl.Len())
	}
}

func TestWaitLine_Peek_Empty_ReturnsFalse(t *testing.T) {
	// GIVEN an empty line
	wl := &WaitLine{}

	// WHEN Peek() is called
	_, ok := wl.Peek()

	// THEN it reports nothing is waiting
	if ok {
		t.Error("Peek on empty line: got ok=true, want false")
	}
}

func TestWaitLine_Dequeue_FIFORegardlessOfArrivalTime(t *testing.T) {
	// GIVEN customers appended out of arrival-time order
	wl := &WaitLine{}
	order := []Event{NewArrivalEvent(9, 1), NewArrivalEvent(2, 1), NewArrivalEvent(5, 1)}
	for _, e := range order {
		wl.Enqueue(e)
	}

	// WHEN the line is drained
	var got []Event
	for !wl.IsEmpty() {
		e, ok := wl.Dequeue()
		if !ok {
			t.Fatal("Dequeue on non-empty line returned ok=false")
		}
		got = append(got, e)
	}

	// THEN customers leave in append order
	for i := range order {
		if got[i] != order[i] {
			t.Errorf("Dequeue order[%d]: got %v, want %v", i, got[i], order[i])
		}
	}
}

func TestWaitLine_Dequeue_Empty_ReturnsFalse(t *testing.T) {
	wl := &WaitLine{}
	if _, ok := wl.Dequeue(); ok {
		t.Error("Dequeue on empty line: got ok=true, want false")
	}
	if wl.Len() != 0 {
		t.Errorf("Len after empty Dequeue: got %d, want 0", wl.Len())
	}
}

func TestWaitLine_String(t *testing.T) {
	wl := &WaitLine{}
	if got := wl.String(); got != "[]" {
		t.Errorf("String on empty line: got %q, want %q", got, "[]")
	}
	wl.Enqueue(NewArrivalEvent(1, 2))
	wl.Enqueue(NewArrivalEvent(3, 4))
	want := "[arrival@1(len=2) arrival@3(len=4)]"
	if got := wl.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
