// Package alloc defines sentinel errors, sentinel fill values and options
// for the typed pooled allocator.
package alloc

import (
	"errors"
	"math"
)

// Sentinel errors for allocator operations.
var (
	// ErrAllocation indicates the runtime could not provide the requested buffer.
	ErrAllocation = errors.New("alloc: allocation failed")

	// ErrAllocationLimit indicates a request above the allocator's size ceiling.
	ErrAllocationLimit = errors.New("alloc: allocation limit exceeded")

	// ErrIllegalArgument indicates a contract violation: a buffer this allocator
	// did not issue, a negative size, or a resize that does not grow.
	ErrIllegalArgument = errors.New("alloc: illegal argument")
)

// DefaultMaxSize is the element ceiling for a single allocation.
const DefaultMaxSize = 1 << 20

// Reserved "unset" values written by the fill policy.
const (
	UndefinedUint   uint   = math.MaxUint - 1
	UndefinedUint32 uint32 = math.MaxUint32 - 1
	UndefinedUint64 uint64 = math.MaxUint64 - 1
)

// Inf is the "unset" value for floating point buffers.
var Inf = math.Inf(1)

// Option configures a Pool at construction.
type Option func(*Options)

// Options holds Pool configuration.
type Options struct {
	// MaxSize is the largest element count a single allocation may have.
	MaxSize int

	// Sentinel, if non-nil, overrides the built-in fill policy. Its dynamic
	// type must be the Pool's element type.
	Sentinel any
}

// DefaultOptions returns the allocator defaults:
//   - MaxSize = DefaultMaxSize (1,048,576 elements)
//   - built-in fill policy (no Sentinel override)
func DefaultOptions() Options {
	return Options{MaxSize: DefaultMaxSize}
}

// WithMaxSize sets the per-allocation element ceiling.
// Non-positive values panic, since no allocation could ever succeed.
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrIllegalArgument.Error() + ": MaxSize must be positive")
		}
		o.MaxSize = n
	}
}

// WithSentinel installs v as the fill value for fresh and cleared slots.
// New panics if v's type differs from the element type.
func WithSentinel(v any) Option {
	return func(o *Options) {
		o.Sentinel = v
	}
}
