package lazystreams

// Iterator is a pull iterator over an existing sequence, in the style of bufio.Scanner or sql.Rows:
// Next advances to the next element and reports whether there is one, Value returns it.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

// Empty returns a stream that produces no elements.
func Empty[T any]() Stream[T] {
	return func() Cursor[T] {
		return emptyCursor[T]{}
	}
}

// Singleton returns a stream that produces elem exactly once per cursor.
func Singleton[T any](elem T) Stream[T] {
	return func() Cursor[T] {
		return &singletonCursor[T]{elem: elem}
	}
}

// Repeat returns an infinite stream that produces elem over and over.
func Repeat[T any](elem T) Stream[T] {
	return func() Cursor[T] {
		return repeatCursor[T]{elem: elem}
	}
}

// Of returns a stream that produces the given elements, in order.
func Of[T any](elems ...T) Stream[T] {
	return func() Cursor[T] {
		return &sliceCursor[T]{slices: [][]T{elems}}
	}
}

// FromSlices returns a stream that produces the elements of the given slices, in order.
// The slices are read when a cursor pulls from them, so changes to their elements made before
// that are visible.
func FromSlices[T any](slices ...[]T) Stream[T] {
	return func() Cursor[T] {
		return &sliceCursor[T]{slices: slices}
	}
}

// Wrap returns a stream that produces the elements of the iterators returned by newIter.
// newIter is called once per cursor, so the stream can be consumed as many times as newIter
// is able to produce a fresh iterator.
func Wrap[T any](newIter func() Iterator[T]) Stream[T] {
	requireFunc(newIter == nil, "iterator factory")

	return func() Cursor[T] {
		iter := newIter()
		if iter == nil {
			return emptyCursor[T]{}
		}

		return &iteratorCursor[T]{iter: iter}
	}
}

// FromChannel returns a stream that produces the elements received through ch, until ch is closed.
// All cursors share ch, so elements received by one cursor are not seen by any other.
// Pulling from a cursor blocks until an element is received or ch is closed.
func FromChannel[T any](ch <-chan T) Stream[T] {
	if ch == nil {
		panic(invalidArgument("channel is nil"))
	}

	return func() Cursor[T] {
		return &channelCursor[T]{ch: ch}
	}
}

type emptyCursor[T any] struct{}

func (emptyCursor[T]) HasMore() bool {
	return false
}

func (emptyCursor[T]) Advance() (T, error) {
	var zero T
	return zero, ErrEndOfSequence
}

type singletonCursor[T any] struct {
	elem T
	done bool
}

func (c *singletonCursor[T]) HasMore() bool {
	return !c.done
}

func (c *singletonCursor[T]) Advance() (T, error) {
	if c.done {
		var zero T
		return zero, ErrEndOfSequence
	}

	c.done = true

	return c.elem, nil
}

type repeatCursor[T any] struct {
	elem T
}

func (repeatCursor[T]) HasMore() bool {
	return true
}

func (c repeatCursor[T]) Advance() (T, error) {
	return c.elem, nil
}

type sliceCursor[T any] struct {
	slices [][]T
	pos    int
}

func (c *sliceCursor[T]) HasMore() bool {
	for len(c.slices) > 0 {
		if c.pos < len(c.slices[0]) {
			return true
		}

		c.slices = c.slices[1:]
		c.pos = 0
	}

	return false
}

func (c *sliceCursor[T]) Advance() (T, error) {
	if !c.HasMore() {
		var zero T
		return zero, ErrEndOfSequence
	}

	elem := c.slices[0][c.pos]
	c.pos++

	return elem, nil
}

// iteratorCursor turns an Iterator into a cursor, buffering the element Next moved to.
type iteratorCursor[T any] struct {
	iter  Iterator[T]
	ready bool
	done  bool
}

func (c *iteratorCursor[T]) HasMore() bool {
	if c.ready {
		return true
	}

	if c.done {
		return false
	}

	if !c.iter.Next() {
		c.done = true
		return false
	}

	c.ready = true

	return true
}

func (c *iteratorCursor[T]) Advance() (T, error) {
	if !c.HasMore() {
		var zero T
		return zero, ErrEndOfSequence
	}

	c.ready = false

	return c.iter.Value(), nil
}

type channelCursor[T any] struct {
	ch    <-chan T
	elem  T
	ready bool
	done  bool
}

func (c *channelCursor[T]) HasMore() bool {
	if c.ready {
		return true
	}

	if c.done {
		return false
	}

	elem, ok := <-c.ch
	if !ok {
		c.done = true
		return false
	}

	c.elem = elem
	c.ready = true

	return true
}

func (c *channelCursor[T]) Advance() (T, error) {
	var zero T

	if !c.HasMore() {
		return zero, ErrEndOfSequence
	}

	elem := c.elem
	c.elem = zero
	c.ready = false

	return elem, nil
}

// errorCursor reports one pending element that fails with err, then continues with next, if any.
type errorCursor[T any] struct {
	err  error
	next Cursor[T]
}

func (c *errorCursor[T]) HasMore() bool {
	if c.err != nil {
		return true
	}

	return c.next != nil && c.next.HasMore()
}

func (c *errorCursor[T]) Advance() (T, error) {
	if err := c.err; err != nil {
		c.err = nil

		var zero T

		return zero, err
	}

	if c.next == nil {
		var zero T
		return zero, ErrEndOfSequence
	}

	return c.next.Advance()
}
