package container

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/regraph/alloc"
)

// Array is a growable, indexable sequence.
type Array[T any] struct {
	mu    sync.RWMutex
	pool  *alloc.Pool[T]
	buf   []T
	count int
}

// NewArray creates an empty Array.
// It panics only if the pool refuses the initial capacity, which cannot
// happen with the default options.
func NewArray[T any](opts ...Option[T]) *Array[T] {
	o := buildOptions(opts)
	buf, err := o.Pool.Allocate(o.Capacity)
	if err != nil {
		panic(err)
	}

	return &Array[T]{pool: o.Pool, buf: buf}
}

// Add appends v, growing the buffer when full.
// Errors: alloc.ErrAllocationLimit once the pool ceiling is reached.
// Complexity: O(1) amortized
func (a *Array[T]) Add(v T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, err := grow(a.pool, a.buf, a.count+1)
	if err != nil {
		return fmt.Errorf("container: Add: %w", err)
	}
	a.buf = buf
	a.buf[a.count] = v
	a.count++

	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if i < 0 || i >= a.count {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, a.count)
	}

	return a.buf[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i < 0 || i >= a.count {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, a.count)
	}
	a.buf[i] = v

	return nil
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.count
}

// Cap returns the current buffer size.
func (a *Array[T]) Cap() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.buf)
}

// Values returns a copy of the stored elements.
func (a *Array[T]) Values() []T {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]T, a.count)
	copy(out, a.buf[:a.count])

	return out
}

// Range returns a copy of elements [begin, end).
func (a *Array[T]) Range(begin, end int) ([]T, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if begin < 0 || end > a.count || begin > end {
		return nil, fmt.Errorf("%w: [%d,%d) not within [0,%d)", ErrIndexOutOfRange, begin, end, a.count)
	}
	out := make([]T, end-begin)
	copy(out, a.buf[begin:end])

	return out, nil
}

// Clone returns an independent copy sharing the same pool.
func (a *Array[T]) Clone() *Array[T] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return &Array[T]{pool: a.pool, buf: a.pool.CopyFromResize(a.buf, nil), count: a.count}
}

// Clear removes all elements and resets the buffer to the pool's fill policy.
func (a *Array[T]) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pool.Clear(a.buf)
	a.count = 0
}

// Release returns the buffer to the pool. The Array must not be used afterwards.
func (a *Array[T]) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pool.Deallocate(&a.buf)
	a.count = 0
}
