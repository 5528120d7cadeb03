package lazystreams

import (
	"fmt"
	"strings"
)

// Reduce calls reduce for each element produced by s, folding it into accumulator acc, returning the final accumulator.
// If pulling an element fails, it returns the accumulator so far, and the error.
func Reduce[T any, A any](s Stream[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	requireFunc(reduce == nil, "accumulator")

	err := s.ForEach(func(elem T, _ uint64) {
		acc = reduce(acc, elem)
	})

	return acc, err
}

// ForEach calls each for each element produced by s, in order.
// If pulling an element fails, it stops and returns the error.
func (s Stream[T]) ForEach(each ConsumerFunc[T]) error {
	requireFunc(each == nil, "consumer")

	cursor := s.cursor()

	index := uint64(0)

	for cursor.HasMore() {
		elem, err := cursor.Advance()
		if err != nil {
			return err
		}

		each(elem, index)

		index++
	}

	return nil
}

// Length returns the number of elements produced by s.
func (s Stream[T]) Length() (int, error) {
	return Reduce(s, 0, func(length int, _ T) int {
		return length + 1
	})
}

// First returns the first element produced by s. The boolean result is false if s is empty.
// Only the first element is pulled.
func (s Stream[T]) First() (T, bool, error) {
	var zero T

	cursor := s.cursor()
	if !cursor.HasMore() {
		return zero, false, nil
	}

	elem, err := cursor.Advance()
	if err != nil {
		return zero, false, err
	}

	return elem, true, nil
}

// Last returns the last element produced by s. The boolean result is false if s is empty.
func (s Stream[T]) Last() (T, bool, error) {
	var zero T

	cursor := s.cursor()
	if !cursor.HasMore() {
		return zero, false, nil
	}

	last := zero

	for cursor.HasMore() {
		elem, err := cursor.Advance()
		if err != nil {
			return zero, false, err
		}

		last = elem
	}

	return last, true, nil
}

// Some returns true as soon as pred returns true for an element produced by s, that is, an element matches.
// No elements after the first match are pulled.
func (s Stream[T]) Some(pred PredicateFunc[T]) (bool, error) {
	cursor := s.Filter(pred)()
	if !cursor.HasMore() {
		return false, nil
	}

	if _, err := cursor.Advance(); err != nil {
		return false, err
	}

	return true, nil
}

// Any is an alias for Some.
func (s Stream[T]) Any(pred PredicateFunc[T]) (bool, error) {
	return s.Some(pred)
}

// All returns true if pred returns true for all elements produced by s, that is, all elements match.
// No elements after the first mismatch are pulled.
func (s Stream[T]) All(pred PredicateFunc[T]) (bool, error) {
	mismatch, err := s.Some(Not(pred))
	if err != nil {
		return false, err
	}

	return !mismatch, nil
}

// Join returns the elements produced by s formatted with fmt.Sprint, separated by sep.
func (s Stream[T]) Join(sep string) (string, error) {
	builder := strings.Builder{}

	err := s.ForEach(func(elem T, index uint64) {
		if index > 0 {
			builder.WriteString(sep)
		}

		builder.WriteString(fmt.Sprint(elem))
	})

	return builder.String(), err
}
