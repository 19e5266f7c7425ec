// Package sparse provides a sparse set of small non-negative integers.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its members for iteration. The DFS reachability
// engine uses it as its "marked" set so that resetting between runs does not
// cost O(V).
package sparse

// Set is a set of ints drawn from the universe [0, capacity).
// The sparse array maps values to indices in the dense array.
type Set struct {
	sparse []int // value -> index in dense
	dense  []int // members in insertion order
}

// New creates an empty set able to hold values in [0, capacity).
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, capacity),
	}
}

// Insert adds v to the set and reports whether it was newly added.
// Values outside the universe are rejected.
func (s *Set) Insert(v int) bool {
	if v < 0 || v >= len(s.sparse) || s.Contains(v) {
		return false
	}
	s.sparse[v] = len(s.dense)
	s.dense = append(s.dense, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= len(s.sparse) {
		return false
	}
	idx := s.sparse[v]
	return idx < len(s.dense) && s.dense[idx] == v
}

// Clear removes all elements in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// Cap returns the size of the universe.
func (s *Set) Cap() int {
	return len(s.sparse)
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *Set) Values() []int {
	return s.dense
}
