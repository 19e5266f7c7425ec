package container

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/regraph/alloc"
)

// Queue is a FIFO queue over a ring buffer.
type Queue[T any] struct {
	mu    sync.RWMutex
	pool  *alloc.Pool[T]
	buf   []T
	head  int // index of the oldest element
	count int
}

// NewQueue creates an empty Queue.
func NewQueue[T any](opts ...Option[T]) *Queue[T] {
	o := buildOptions(opts)
	buf, err := o.Pool.Allocate(o.Capacity)
	if err != nil {
		panic(err)
	}

	return &Queue[T]{pool: o.Pool, buf: buf}
}

// Enqueue appends v at the tail.
// Complexity: O(1) amortized
func (q *Queue[T]) Enqueue(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == len(q.buf) {
		if err := q.grow(); err != nil {
			return fmt.Errorf("container: Enqueue: %w", err)
		}
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++

	return nil
}

// grow unwraps the full ring in place so head is 0, then enlarges it.
func (q *Queue[T]) grow() error {
	if q.head > 0 {
		// rotate left by head: three reversals
		slices.Reverse(q.buf[:q.head])
		slices.Reverse(q.buf[q.head:])
		slices.Reverse(q.buf)
		q.head = 0
	}
	buf, err := grow(q.pool, q.buf, len(q.buf)+1)
	if err != nil {
		return err
	}
	q.buf = buf

	return nil
}

// Dequeue removes and returns the oldest element, or ErrEmpty.
func (q *Queue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return v, nil
}

// Peek returns the oldest element without removing it, or ErrEmpty.
func (q *Queue[T]) Peek() (T, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.buf[q.head], nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.count
}

// Values returns the elements from oldest to newest.
func (q *Queue[T]) Values() []T {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return out
}

// Clear empties the queue, keeping its buffer.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pool.Clear(q.buf)
	q.head, q.count = 0, 0
}

// Release returns the buffer to the pool. The Queue must not be used afterwards.
func (q *Queue[T]) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pool.Deallocate(&q.buf)
	q.head, q.count = 0, 0
}
