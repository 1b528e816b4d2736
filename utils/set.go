package utils

// Set is a minimal generic membership set.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set from the provided items, deduplicating them.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int { return len(s) }
