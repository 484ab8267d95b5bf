package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_NewQueue_IsEmpty(t *testing.T) {
	pq := NewPriorityQueue[key]()
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())
}

func TestPriorityQueue_PeekDequeue_YieldsNonDecreasingKeys(t *testing.T) {
	// GIVEN a queue loaded with pairwise distinct keys
	pq := NewPriorityQueue[key]()
	for _, k := range []key{30, 10, 50, 20, 40, 60, 0} {
		require.True(t, pq.Enqueue(k))
	}
	assert.False(t, pq.IsEmpty())

	// WHEN it is drained with Peek+Dequeue
	var got []key
	for !pq.IsEmpty() {
		v, err := pq.Peek()
		require.NoError(t, err)
		got = append(got, v)
		require.NoError(t, pq.Dequeue())
	}

	// THEN keys come out strictly increasing
	assert.Equal(t, []key{0, 10, 20, 30, 40, 50, 60}, got)
}

func TestPriorityQueue_Empty_DequeueAndPeekFail(t *testing.T) {
	tests := []struct {
		name string
		pq   *PriorityQueue[key]
	}{
		{"growable", NewPriorityQueue[key]()},
		{"bounded", NewBoundedPriorityQueue[key](4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pq.Dequeue()
			assert.ErrorIs(t, err, ErrEmptyCollection)

			v, err := tc.pq.Peek()
			assert.ErrorIs(t, err, ErrEmptyCollection)
			assert.Equal(t, key(0), v)

			assert.True(t, tc.pq.IsEmpty())
		})
	}
}

func TestPriorityQueue_Bounded_EnqueueReportsCapacity(t *testing.T) {
	// GIVEN a queue bounded to two elements
	pq := NewBoundedPriorityQueue[key](2)
	require.True(t, pq.Enqueue(3))
	require.True(t, pq.Enqueue(1))

	// WHEN a third element is enqueued
	ok := pq.Enqueue(2)

	// THEN it is rejected and the queue is unchanged
	assert.False(t, ok)
	assert.Equal(t, 2, pq.Len())
	head, err := pq.Peek()
	require.NoError(t, err)
	assert.Equal(t, key(1), head)
}

func TestPriorityQueue_Dequeue_LastElementEmptiesQueue(t *testing.T) {
	pq := NewPriorityQueue[key]()
	pq.Enqueue(9)
	require.NoError(t, pq.Dequeue())
	assert.True(t, pq.IsEmpty())
	assert.ErrorIs(t, pq.Dequeue(), ErrEmptyCollection)
}
