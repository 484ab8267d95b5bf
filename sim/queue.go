// Implements the WaitLine, which holds customers waiting for the teller.
// Customers are appended on arrival when the teller cannot take them.

package sim

import (
	"fmt"
	"strings"
)

// WaitLine is the FIFO of arrival events that found the teller busy.
// Customers leave strictly in the order they joined.
type WaitLine struct {
	line []Event
}

// Enqueue appends a customer at the tail of the line.
func (wl *WaitLine) Enqueue(e Event) {
	wl.line = append(wl.line, e)
}

// Dequeue removes the customer at the head of the line.
// The second result is false when the line is empty.
func (wl *WaitLine) Dequeue() (Event, bool) {
	if len(wl.line) == 0 {
		return Event{}, false
	}
	head := wl.line[0]
	wl.line[0] = Event{}
	wl.line = wl.line[1:]
	return head, true
}

// Peek returns the customer at the head of the line without removing it.
func (wl *WaitLine) Peek() (Event, bool) {
	if len(wl.line) == 0 {
		return Event{}, false
	}
	return wl.line[0], true
}

// Len returns the number of waiting customers.
func (wl *WaitLine) Len() int {
	return len(wl.line)
}

// IsEmpty reports whether nobody is waiting.
func (wl *WaitLine) IsEmpty() bool {
	return len(wl.line) == 0
}

func (wl *WaitLine) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wl.line {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wl.line)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
