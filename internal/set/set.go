// Package set provides an unordered collection of unique values.
package set

// Set contains every value at most once.
type Set[T comparable] map[T]struct{}

// From returns a Set containing the values of slice.
func From[T comparable](slice []T) Set[T] {
	set := make(Set[T], len(slice))

	for _, v := range slice {
		set[v] = struct{}{}
	}
	return set
}

// Add adds val to the set, adding a value that is already contained is a
// no-op.
func (s Set[T]) Add(val T) {
	s[val] = struct{}{}
}

// Contains returns true if v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, exists := s[v]
	return exists
}
