package scorelist

type Comparer[T any] interface {
	Before(T) bool
}

// Less adapts a Comparer to the less function expected by ordered trees.
func Less[T Comparer[T]](a, b T) bool {
	return a.Before(b)
}
