package set

import "iter"

type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return Set[T](make(map[T]struct{}))
}

// Of collects the values of seq.
func Of[T comparable](seq iter.Seq[T]) Set[T] {
	s := New[T]()
	for t := range seq {
		s.Insert(t)
	}
	return s
}

// Keys collects the keys of seq, ignoring the values.
func Keys[K comparable, V any](seq iter.Seq2[K, V]) Set[K] {
	s := New[K]()
	for k := range seq {
		s.Insert(k)
	}
	return s
}

func (s Set[T]) Insert(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Delete(t T) {
	delete(s, t)
}

func (s Set[T]) Exists(t T) bool {
	_, ok := s[t]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range s {
			if !yield(t) {
				return
			}
		}
	}
}
