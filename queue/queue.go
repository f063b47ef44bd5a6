package queue

import "errors"

// ErrEmpty is returned when removing from an empty queue.
var ErrEmpty = errors.New("dequeue() used on empty queue")

// Queue is a FIFO buffer. The zero value is ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// New returns a queue with room for capacity items before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue adds item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the oldest item.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	item := q.items[q.head]
	q.items[q.head] = zero // Release reference
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, nil
}

// Front returns the oldest item without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}

// Drain removes and returns every queued item, oldest first.
func (q *Queue[T]) Drain() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
	return out
}
