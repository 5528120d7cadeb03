package lazystreams

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Group is a key together with the elements sharing that key.
// A Group is itself a stream over those elements.
type Group[K comparable, T any] struct {
	Key K
	Stream[T]
}

// Sort returns a stream that produces the elements of s in the order given by less.
// The sort is stable, elements that are equal keep their relative order.
//
// Every cursor request drains s completely, and sorts a fresh copy of its elements.
// Sorting an infinite stream never produces an element.
func (s Stream[T]) Sort(less LessFunc[T]) Stream[T] {
	requireStream(s == nil)
	requireFunc(less == nil, "less function")

	return func() Cursor[T] {
		elems, err := s.ToSlice()
		if err != nil {
			return &errorCursor[T]{err: err}
		}

		slices.SortStableFunc(elems, less)

		return &sliceCursor[T]{slices: [][]T{elems}}
	}
}

// SortBy returns a stream that produces the elements of s in ascending order of the keys
// returned by key. See Sort.
func SortBy[T any, K constraints.Ordered](s Stream[T], key MapperFunc[T, K]) Stream[T] {
	requireFunc(key == nil, "key mapper")

	return s.Sort(func(a T, b T) bool {
		return key(a) < key(b)
	})
}

// SortByDescending returns a stream that produces the elements of s in descending order of the keys
// returned by key. See Sort.
func SortByDescending[T any, K constraints.Ordered](s Stream[T], key MapperFunc[T, K]) Stream[T] {
	requireFunc(key == nil, "key mapper")

	return s.Sort(func(a T, b T) bool {
		return key(a) > key(b)
	})
}

// GroupBy returns a stream that produces one Group per distinct key returned by key, in order of
// the first occurrence of each key. Each group produces the elements with its key, in order.
// A zero key, such as a nil interface or pointer, is a key like any other.
//
// Every cursor request drains s completely. Grouping an infinite stream never produces a group.
func GroupBy[T any, K comparable](s Stream[T], key MapperFunc[T, K]) Stream[Group[K, T]] {
	requireStream(s == nil)
	requireFunc(key == nil, "key mapper")

	return func() Cursor[Group[K, T]] {
		groups := linkedhashmap.New()

		err := s.ForEach(func(elem T, _ uint64) {
			k := key(elem)

			var elems []T
			if v, ok := groups.Get(k); ok {
				elems = v.([]T)
			}

			groups.Put(k, append(elems, elem))
		})
		if err != nil {
			return &errorCursor[Group[K, T]]{err: err}
		}

		result := make([]Group[K, T], 0, groups.Size())

		iter := groups.Iterator()
		for iter.Next() {
			// a nil interface key fails the assertion, and stays the zero K
			k, _ := iter.Key().(K)

			result = append(result, Group[K, T]{
				Key:    k,
				Stream: Of(iter.Value().([]T)...),
			})
		}

		return &sliceCursor[Group[K, T]]{slices: [][]Group[K, T]{result}}
	}
}
