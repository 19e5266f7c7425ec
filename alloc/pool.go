// Package alloc implements a typed pooled allocator: every buffer of element
// type T handed out by a Pool is recorded, so that resizing, clearing and
// copying are only ever performed on buffers the same Pool issued.
//
// Buffers are identified by the address of their first element. Every
// allocation reserves capacity for at least one element so that even
// zero-length buffers have an identity.
package alloc

import (
	"fmt"
	"sync"
)

// Pool owns all buffers of element type T it has issued.
// All methods are safe for concurrent use.
type Pool[T any] struct {
	mu       sync.Mutex
	maxSize  int
	sentinel *T
	records  map[*T][]T // first element -> full buffer
}

// New creates an empty Pool for element type T.
// Complexity: O(1)
func New[T any](opts ...Option) *Pool[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		maxSize: o.MaxSize,
		records: make(map[*T][]T),
	}
	if o.Sentinel != nil {
		v, ok := o.Sentinel.(T)
		if !ok {
			panic(fmt.Sprintf("%s: sentinel of type %T for pool of %T", ErrIllegalArgument, o.Sentinel, *new(T)))
		}
		p.sentinel = &v
	}

	return p
}

// identity returns the record key of buf, or nil when buf has no backing element.
func identity[T any](buf []T) *T {
	if cap(buf) == 0 {
		return nil
	}
	return &buf[:1][0]
}

// Allocate returns a new buffer of size elements, all set to the fill policy.
// Errors: ErrIllegalArgument (size < 0), ErrAllocationLimit, ErrAllocation.
// Complexity: O(size)
func (p *Pool[T]) Allocate(size int) ([]T, error) {
	return p.AllocateFrom(size, 0)
}

// AllocateFrom is Allocate, but applies the fill policy only from index from
// onwards. Slots before from are left zero-valued for the caller to overwrite.
// An out-of-range from is treated as 0.
func (p *Pool[T]) AllocateFrom(size, from int) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.allocate(size, from)
}

func (p *Pool[T]) allocate(size, from int) (buf []T, err error) {
	// 1. Validate request
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrIllegalArgument, size)
	}
	if size > p.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrAllocationLimit, size, p.maxSize)
	}
	if from < 0 || from > size {
		from = 0
	}

	// 2. Obtain storage; a runtime refusal surfaces as ErrAllocation
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	buf = make([]T, size, max(size, 1))

	// 3. Initialize and register
	p.fill(buf, from)
	p.records[identity(buf)] = buf

	return buf, nil
}

// ResizeTo grows buf, which must have been issued by p, to newSize elements.
// Existing elements are moved into the new buffer, the tail is filled per
// policy, and the record is replaced. The old buffer must no longer be used.
// Errors: ErrIllegalArgument (foreign buffer, newSize not larger),
// ErrAllocationLimit, ErrAllocation.
// Complexity: O(newSize)
func (p *Pool[T]) ResizeTo(buf []T, newSize int) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// 1. The buffer must be ours
	key := identity(buf)
	old, ok := p.records[key]
	if key == nil || !ok {
		return nil, fmt.Errorf("%w: buffer not issued by this allocator", ErrIllegalArgument)
	}
	// 2. Only growth is supported
	if newSize > p.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrAllocationLimit, newSize, p.maxSize)
	}
	if newSize <= len(old) {
		return nil, fmt.Errorf("%w: resize from %d to %d does not grow", ErrIllegalArgument, len(old), newSize)
	}

	// 3. Allocate the replacement, move the contents across, drop the old record
	grown, err := p.allocate(newSize, len(old))
	if err != nil {
		return nil, err
	}
	copy(grown, old)
	clear(old)
	delete(p.records, key)

	return grown, nil
}

// CopyFromResize copies src into dst, both issued by p, and returns dst.
// A nil dst is allocated at src's size; a dst of a different size is
// deallocated and reallocated first. It returns nil when src (or a non-nil
// dst) is foreign.
// Complexity: O(len(src))
func (p *Pool[T]) CopyFromResize(src, dst []T) []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	source, ok := p.records[identity(src)]
	if !ok {
		return nil
	}

	dkey := identity(dst)
	switch {
	case dkey == nil:
		// construction
		fresh, err := p.allocate(len(source), len(source))
		if err != nil {
			return nil
		}
		dst = fresh
	default:
		// assignment
		current, ok := p.records[dkey]
		if !ok {
			return nil
		}
		if len(current) != len(source) {
			clear(current)
			delete(p.records, dkey)
			fresh, err := p.allocate(len(source), len(source))
			if err != nil {
				return nil
			}
			dst = fresh
		} else {
			dst = current
		}
	}

	copy(dst, source)

	return dst
}

// Deallocate releases *buf and sets it to nil. Nil and foreign buffers are
// ignored, so releasing twice is harmless.
// Complexity: O(size)
func (p *Pool[T]) Deallocate(buf *[]T) {
	if buf == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := identity(*buf)
	rec, ok := p.records[key]
	if key == nil || !ok {
		return
	}
	clear(rec)
	delete(p.records, key)
	*buf = nil
}

// Clear resets every slot of a recognized buffer to the fill policy.
// Foreign buffers are left untouched.
func (p *Pool[T]) Clear(buf []T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if rec, ok := p.records[identity(buf)]; ok {
		p.fill(rec, 0)
	}
}

// IsPresent reports whether buf was issued by p and is still live.
func (p *Pool[T]) IsPresent(buf []T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := identity(buf)
	if key == nil {
		return false
	}
	_, ok := p.records[key]

	return ok
}

// SizeOf returns the recorded element count of buf.
func (p *Pool[T]) SizeOf(buf []T) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.records[identity(buf)]

	return len(rec), ok
}

// Len returns the number of live allocations.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.records)
}

// MaxSize returns the per-allocation element ceiling.
func (p *Pool[T]) MaxSize() int {
	return p.maxSize
}

// fill writes the "unset" value into buf[from:].
func (p *Pool[T]) fill(buf []T, from int) {
	tail := buf[from:]
	if p.sentinel != nil {
		for i := range tail {
			tail[i] = *p.sentinel
		}
		return
	}

	switch b := any(tail).(type) {
	case []uint:
		for i := range b {
			b[i] = UndefinedUint
		}
	case []uint32:
		for i := range b {
			b[i] = UndefinedUint32
		}
	case []uint64:
		for i := range b {
			b[i] = UndefinedUint64
		}
	case []float64:
		for i := range b {
			b[i] = Inf
		}
	case []float32:
		for i := range b {
			b[i] = float32(Inf)
		}
	default:
		// bool -> false, byte -> 0, everything else -> zero value
		clear(tail)
	}
}
