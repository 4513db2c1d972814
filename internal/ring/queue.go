// Package ring provides fixed-capacity queue and stack containers.
//
// Both containers never grow: pushing into a full container is a silent
// no-op reported through the boolean return. This keeps capacity
// exhaustion a local, recoverable condition for callers that treat the
// bound as backpressure rather than an error.
package ring

// Queue is a fixed-capacity FIFO backed by a circular buffer.
type Queue[T any] struct {
	items []T
	head  int
	size  int
}

// NewQueue returns a queue that holds at most capacity elements.
// A non-positive capacity yields a queue that rejects every Enqueue.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, capacity)}
}

// Enqueue appends value at the tail. It reports false, leaving the queue
// untouched, when the queue is full.
func (q *Queue[T]) Enqueue(value T) bool {
	if q.IsFull() {
		return false
	}
	tail := (q.head + q.size) % len(q.items)
	q.items[tail] = value
	q.size++
	return true
}

// Dequeue removes and returns the element at the head. The second return
// is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	value := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return value, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	return q.items[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool {
	return q.size == len(q.items)
}
