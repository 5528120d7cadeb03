package lazystreams

// Cursor is a single traversal of a stream.
//
// HasMore reports whether another element is available. It may be called any number of times in a
// row without changing what the next Advance returns.
//
// Advance returns the next element. It returns ErrEndOfSequence if HasMore would report false,
// or the error produced by the stage that failed to produce the element.
type Cursor[T any] interface {
	HasMore() bool
	Advance() (T, error)
}

// Stream is a pipeline stage. Calling it requests a new cursor over its elements.
// Streams hold no traversal state, each cursor is independent of all others.
type Stream[T any] func() Cursor[T]

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the stream.
type ConsumerFunc[T any] func(elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) T {
		return elem
	}
}

// Not returns a predicate that negates pred.
func Not[T any](pred PredicateFunc[T]) PredicateFunc[T] {
	requireFunc(pred == nil, "predicate")

	return func(elem T) bool {
		return !pred(elem)
	}
}

// cursor returns a new cursor of s, panicking if s is nil.
func (s Stream[T]) cursor() Cursor[T] {
	requireStream(s == nil)
	return s()
}
