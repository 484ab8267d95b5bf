// Package heap provides the array-backed minimum binary heap that drives the
// simulator's event ordering, plus the PriorityQueue adapter built on it.
//
// Elements carry their own ordering through the Ordered constraint; the heap
// places no other requirement on them.
package heap

import "errors"

// ErrEmptyCollection is returned when an element is removed or inspected
// from an empty heap or queue.
var ErrEmptyCollection = errors.New("empty collection")

// LegacyCapacity is the fixed capacity of a bounded heap when the caller
// asks for legacy sizing without naming a bound.
const LegacyCapacity = 10

// Ordered types express a total ordering over themselves.
type Ordered[T any] interface {
	// AtMost reports whether the receiver sorts no later than other.
	// It must be reflexive, transitive and total.
	AtMost(other T) bool
}

// BinaryHeap is a minimum binary heap over a contiguous buffer.
// For every live index i > 0, elements[parent(i)].AtMost(elements[i]).
type BinaryHeap[T Ordered[T]] struct {
	elements []T
	capacity int // 0 means the buffer grows on demand
}

// NewBinaryHeap creates an empty heap whose buffer doubles when full,
// so Insert never fails.
func NewBinaryHeap[T Ordered[T]]() *BinaryHeap[T] {
	return &BinaryHeap[T]{}
}

// NewBoundedBinaryHeap creates an empty heap holding at most capacity elements.
// A non-positive capacity selects LegacyCapacity.
func NewBoundedBinaryHeap[T Ordered[T]](capacity int) *BinaryHeap[T] {
	if capacity <= 0 {
		capacity = LegacyCapacity
	}
	return &BinaryHeap[T]{
		elements: make([]T, 0, capacity),
		capacity: capacity,
	}
}

// ElementCount returns the number of live elements.
func (h *BinaryHeap[T]) ElementCount() int { return len(h.elements) }

// Capacity returns the element bound, or 0 for a growable heap.
func (h *BinaryHeap[T]) Capacity() int { return h.capacity }

// Insert adds e and restores the heap invariant.
// It returns false, leaving the heap untouched, when a bounded heap is full.
func (h *BinaryHeap[T]) Insert(e T) bool {
	n := len(h.elements)
	if h.capacity > 0 && n == h.capacity {
		return false
	}
	if n == cap(h.elements) {
		h.grow()
	}
	h.elements = append(h.elements, e)
	h.up(n)
	return true
}

// Remove discards the minimum element.
func (h *BinaryHeap[T]) Remove() error {
	n := len(h.elements)
	if n == 0 {
		return ErrEmptyCollection
	}
	last := n - 1
	h.elements[0] = h.elements[last]
	var zero T
	h.elements[last] = zero
	h.elements = h.elements[:last]
	if last > 0 {
		h.down(0)
	}
	return nil
}

// Retrieve returns the minimum element without removing it.
func (h *BinaryHeap[T]) Retrieve() (T, error) {
	if len(h.elements) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return h.elements[0], nil
}

// grow doubles the backing buffer. Bounded heaps are allocated at full
// capacity up front and never reach here.
func (h *BinaryHeap[T]) grow() {
	newCap := 2 * cap(h.elements)
	if newCap == 0 {
		newCap = 1
	}
	grown := make([]T, len(h.elements), newCap)
	copy(grown, h.elements)
	h.elements = grown
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return left(i) + 1 }

func (h *BinaryHeap[T]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
}

// up moves the element at i toward the root while it is at most its parent.
func (h *BinaryHeap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.elements[i].AtMost(h.elements[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// down moves the element at i toward the leaves until it is at most both children.
func (h *BinaryHeap[T]) down(i int) {
	n := len(h.elements)
	for {
		l := left(i)
		if l >= n || l < 0 { // l < 0 guards against integer overflow
			return
		}
		m := i
		if !h.elements[i].AtMost(h.elements[l]) {
			m = l
		}
		// right replaces the candidate only when strictly smaller
		if r := right(i); r < n && !h.elements[m].AtMost(h.elements[r]) {
			m = r
		}
		if m == i {
			return
		}
		h.swap(i, m)
		i = m
	}
}
