// Package container provides a dynamic array, a LIFO stack and a FIFO queue
// whose storage is issued and grown by an alloc.Pool.
//
// Each container guards its own state with a sync.RWMutex, which makes
// individual calls safe from multiple goroutines. Sequences of calls
// (read-modify-write) are not atomic; callers needing that must synchronize
// externally.
package container

import (
	"errors"

	"github.com/katalvlaran/regraph/alloc"
)

// Sentinel errors for container operations.
var (
	// ErrEmpty is returned by Pop, Dequeue and Peek on an empty container.
	ErrEmpty = errors.New("container: empty")

	// ErrIndexOutOfRange is returned for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("container: index out of range")
)

// DefaultCapacity is the initial element capacity of a new container.
const DefaultCapacity = 8

// Option configures a container at construction.
type Option[T any] func(*Options[T])

// Options holds container configuration.
type Options[T any] struct {
	// Pool issues and grows the backing buffer. Defaults to a private pool.
	Pool *alloc.Pool[T]

	// Capacity is the initial buffer size (minimum 1).
	Capacity int
}

// DefaultOptions returns a private pool and DefaultCapacity.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Capacity: DefaultCapacity}
}

// WithPool shares p between containers of the same element type.
func WithPool[T any](p *alloc.Pool[T]) Option[T] {
	return func(o *Options[T]) {
		if p != nil {
			o.Pool = p
		}
	}
}

// WithCapacity sets the initial capacity; values below 1 are ignored.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// buildOptions applies opts over the defaults and fills in a private pool.
func buildOptions[T any](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Pool == nil {
		o.Pool = alloc.New[T]()
	}
	if o.Capacity > o.Pool.MaxSize() {
		o.Capacity = o.Pool.MaxSize()
	}

	return o
}

// grow returns a buffer with room for at least need elements, doubling the
// current size through the pool.
func grow[T any](p *alloc.Pool[T], buf []T, need int) ([]T, error) {
	if need <= len(buf) {
		return buf, nil
	}
	size := max(len(buf)*2, need)
	if size > p.MaxSize() {
		size = max(need, p.MaxSize())
	}

	return p.ResizeTo(buf, size)
}
