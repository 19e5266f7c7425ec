package container

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/regraph/alloc"
)

// Stack is a LIFO stack.
type Stack[T any] struct {
	mu   sync.RWMutex
	pool *alloc.Pool[T]
	buf  []T
	top  int // number of elements; buf[top-1] is the top
}

// NewStack creates an empty Stack.
func NewStack[T any](opts ...Option[T]) *Stack[T] {
	o := buildOptions(opts)
	buf, err := o.Pool.Allocate(o.Capacity)
	if err != nil {
		panic(err)
	}

	return &Stack[T]{pool: o.Pool, buf: buf}
}

// Push places v on top of the stack.
// Complexity: O(1) amortized
func (s *Stack[T]) Push(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := grow(s.pool, s.buf, s.top+1)
	if err != nil {
		return fmt.Errorf("container: Push: %w", err)
	}
	s.buf = buf
	s.buf[s.top] = v
	s.top++

	return nil
}

// Pop removes and returns the top element, or ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.top == 0 {
		return zero, ErrEmpty
	}
	s.top--
	v := s.buf[s.top]
	s.buf[s.top] = zero

	return v, nil
}

// Peek returns the top element without removing it, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.top == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.buf[s.top-1], nil
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.top
}

// Values returns the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, s.top)
	for i := 0; i < s.top; i++ {
		out[i] = s.buf[s.top-1-i]
	}

	return out
}

// Clear empties the stack, keeping its buffer.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool.Clear(s.buf)
	s.top = 0
}

// Release returns the buffer to the pool. The Stack must not be used afterwards.
func (s *Stack[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pool.Deallocate(&s.buf)
	s.top = 0
}
