package heap

import "fmt"

// PriorityQueue presents a BinaryHeap as a queue that always yields its
// minimum element first. It owns its heap exclusively.
type PriorityQueue[T Ordered[T]] struct {
	heap *BinaryHeap[T]
}

// NewPriorityQueue creates an empty queue that never rejects an Enqueue.
func NewPriorityQueue[T Ordered[T]]() *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: NewBinaryHeap[T]()}
}

// NewBoundedPriorityQueue creates an empty queue over a fixed-capacity heap.
// See NewBoundedBinaryHeap for how capacity is interpreted.
func NewBoundedPriorityQueue[T Ordered[T]](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{heap: NewBoundedBinaryHeap[T](capacity)}
}

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.ElementCount() == 0
}

// Len returns the number of queued elements.
func (pq *PriorityQueue[T]) Len() int {
	return pq.heap.ElementCount()
}

// Enqueue inserts e. It returns false when a bounded queue is full.
func (pq *PriorityQueue[T]) Enqueue(e T) bool {
	return pq.heap.Insert(e)
}

// Dequeue discards the minimum element.
func (pq *PriorityQueue[T]) Dequeue() error {
	if pq.IsEmpty() {
		return fmt.Errorf("dequeue: %w", ErrEmptyCollection)
	}
	return pq.heap.Remove()
}

// Peek returns the minimum element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("peek: %w", ErrEmptyCollection)
	}
	return pq.heap.Retrieve()
}
