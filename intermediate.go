package lazystreams

import (
	"reflect"

	"github.com/emirpasic/gods/sets/hashset"
)

// Map returns a stream that calls mapp for each element produced by s, mapping it to type U.
// mapp is called exactly once per element, in order, when the element is pulled.
func Map[T any, U any](s Stream[T], mapp MapperFunc[T, U]) Stream[U] {
	requireStream(s == nil)
	requireFunc(mapp == nil, "mapper")

	return func() Cursor[U] {
		return &mapCursor[T, U]{
			upstream: s(),
			mapp:     mapp,
		}
	}
}

// Cast returns a stream that converts each element produced by s to type U.
// An element that cannot be converted makes Advance return a *TypeMismatchError when it is pulled.
// A nil element converts to the zero value of U if U can hold nil, and is a mismatch otherwise.
func Cast[U any, T any](s Stream[T]) Stream[U] {
	requireStream(s == nil)

	target := reflect.TypeOf((*U)(nil)).Elem()

	return func() Cursor[U] {
		return &castCursor[T, U]{
			upstream: s(),
			target:   target,
		}
	}
}

// OfType returns a stream that produces only the elements of s that are of type U, converted to U.
func OfType[U any, T any](s Stream[T]) Stream[U] {
	requireStream(s == nil)

	return Cast[U](s.Filter(func(elem T) bool {
		_, ok := any(elem).(U)
		return ok
	}))
}

// Filter returns a stream that produces only the elements of s for which pred returns true.
func (s Stream[T]) Filter(pred PredicateFunc[T]) Stream[T] {
	requireStream(s == nil)
	requireFunc(pred == nil, "predicate")

	return func() Cursor[T] {
		return newFilterCursor(s(), pred)
	}
}

// Take returns a stream that produces the same elements as s, in order, up to num elements.
// It never pulls more than num elements from s, so it can be used to bound an infinite stream.
func (s Stream[T]) Take(num int) Stream[T] {
	requireStream(s == nil)
	requireCount(num, "take count")

	return func() Cursor[T] {
		return &takeCursor[T]{
			upstream: s(),
			max:      num,
		}
	}
}

// Limit is an alias for Take.
func (s Stream[T]) Limit(num int) Stream[T] {
	return s.Take(num)
}

// Skip returns a stream that produces the same elements as s, in order, skipping the first num elements.
// The elements are skipped when a cursor is requested. If pulling one of them fails, the first
// Advance of the cursor returns that error instead, and skipping stops there.
func (s Stream[T]) Skip(num int) Stream[T] {
	requireStream(s == nil)
	requireCount(num, "skip count")

	return func() Cursor[T] {
		upstream := s()

		for i := 0; i < num && upstream.HasMore(); i++ {
			if _, err := upstream.Advance(); err != nil {
				return &errorCursor[T]{err: err, next: upstream}
			}
		}

		return upstream
	}
}

// DefaultIfEmpty returns a stream that produces the same elements as s, or only def if s is empty.
func (s Stream[T]) DefaultIfEmpty(def T) Stream[T] {
	requireStream(s == nil)

	return func() Cursor[T] {
		upstream := s()
		if !upstream.HasMore() {
			return &singletonCursor[T]{elem: def}
		}

		return upstream
	}
}

// Peek returns a stream that calls peek for each element produced by s, in order, when it is
// pulled, and produces the same elements.
func (s Stream[T]) Peek(peek ConsumerFunc[T]) Stream[T] {
	requireStream(s == nil)
	requireFunc(peek == nil, "consumer")

	return func() Cursor[T] {
		return &peekCursor[T]{
			upstream: s(),
			peek:     peek,
		}
	}
}

// Distinct returns a stream that produces the elements of s, in order, skipping any element equal
// to one produced before. Each cursor remembers the elements it has seen, so Distinct can be combined
// with Take on an infinite stream as long as enough distinct elements exist.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	requireStream(s == nil)

	return func() Cursor[T] {
		seen := hashset.New()

		return newFilterCursor(s(), func(elem T) bool {
			if seen.Contains(elem) {
				return false
			}

			seen.Add(elem)

			return true
		})
	}
}

// Without returns a stream that produces the elements of s, in order, that are not produced by other.
// other is drained completely every time a cursor is requested.
func Without[T comparable](s Stream[T], other Stream[T]) Stream[T] {
	requireStream(s == nil)
	requireStream(other == nil)

	return func() Cursor[T] {
		forbidden := hashset.New()

		err := other.ForEach(func(elem T, _ uint64) {
			forbidden.Add(elem)
		})
		if err != nil {
			return &errorCursor[T]{err: err}
		}

		return newFilterCursor(s(), func(elem T) bool {
			return !forbidden.Contains(elem)
		})
	}
}

type mapCursor[T any, U any] struct {
	upstream Cursor[T]
	mapp     MapperFunc[T, U]
}

func (c *mapCursor[T, U]) HasMore() bool {
	return c.upstream.HasMore()
}

func (c *mapCursor[T, U]) Advance() (U, error) {
	elem, err := c.upstream.Advance()
	if err != nil {
		var zero U
		return zero, err
	}

	return c.mapp(elem), nil
}

type castCursor[T any, U any] struct {
	upstream Cursor[T]
	target   reflect.Type
}

func (c *castCursor[T, U]) HasMore() bool {
	return c.upstream.HasMore()
}

func (c *castCursor[T, U]) Advance() (U, error) {
	elem, err := c.upstream.Advance()
	if err != nil {
		var zero U
		return zero, err
	}

	outElem, ok := any(elem).(U)
	if !ok && any(elem) == nil && nillable(c.target) {
		return outElem, nil
	}

	if !ok {
		return outElem, &TypeMismatchError{
			Element: elem,
			Target:  c.target,
		}
	}

	return outElem, nil
}

// nillable returns true if typ can hold nil.
func nillable(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true

	default:
		return false
	}
}

// filterState is the state of a filterCursor's lookahead buffer.
type filterState int

const (
	noElementReady filterState = iota
	elementReady
	upstreamExhausted
)

// filterCursor buffers the next element accepted by pred, so that HasMore can be answered
// without losing it. HasMore never discards a buffered element.
type filterCursor[T any] struct {
	upstream Cursor[T]
	pred     PredicateFunc[T]
	state    filterState
	elem     T
	err      error
}

func newFilterCursor[T any](upstream Cursor[T], pred PredicateFunc[T]) *filterCursor[T] {
	return &filterCursor[T]{
		upstream: upstream,
		pred:     pred,
	}
}

func (c *filterCursor[T]) HasMore() bool {
	switch c.state {
	case elementReady:
		return true

	case upstreamExhausted:
		return false
	}

	for c.upstream.HasMore() {
		elem, err := c.upstream.Advance()
		if err != nil {
			c.err = err
			c.state = elementReady

			return true
		}

		if c.pred(elem) {
			c.elem = elem
			c.state = elementReady

			return true
		}
	}

	c.state = upstreamExhausted

	return false
}

func (c *filterCursor[T]) Advance() (T, error) {
	var zero T

	if !c.HasMore() {
		return zero, ErrEndOfSequence
	}

	elem, err := c.elem, c.err
	c.elem, c.err = zero, nil
	c.state = noElementReady

	return elem, err
}

type takeCursor[T any] struct {
	upstream Cursor[T]
	max      int
	taken    int
}

func (c *takeCursor[T]) HasMore() bool {
	return c.taken < c.max && c.upstream.HasMore()
}

func (c *takeCursor[T]) Advance() (T, error) {
	if c.taken >= c.max || !c.upstream.HasMore() {
		var zero T
		return zero, ErrEndOfSequence
	}

	c.taken++

	return c.upstream.Advance()
}

type peekCursor[T any] struct {
	upstream Cursor[T]
	peek     ConsumerFunc[T]
	index    uint64
}

func (c *peekCursor[T]) HasMore() bool {
	return c.upstream.HasMore()
}

func (c *peekCursor[T]) Advance() (T, error) {
	elem, err := c.upstream.Advance()
	if err != nil {
		return elem, err
	}

	c.peek(elem, c.index)
	c.index++

	return elem, nil
}
