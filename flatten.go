package lazystreams

// Flatten returns a stream that produces all elements of the streams produced by streams, in order.
// Inner streams are requested one at a time, as the previous one runs out. Empty or nil inner
// streams are skipped.
func Flatten[T any](streams Stream[Stream[T]]) Stream[T] {
	requireStream(streams == nil)

	return func() Cursor[T] {
		return &flatCursor[T]{outer: streams()}
	}
}

// FlatMap returns a stream that calls mapp for each element produced by s, mapping it to an
// intermediate stream that produces elements of type U.
// The new stream produces all elements produced by the intermediate streams, in order.
func FlatMap[T any, U any](s Stream[T], mapp MapperFunc[T, Stream[U]]) Stream[U] {
	return Flatten(Map(s, mapp))
}

// Concat returns a stream that produces the elements of s, followed by the elements of others, in order.
func (s Stream[T]) Concat(others ...Stream[T]) Stream[T] {
	requireStream(s == nil)

	for _, other := range others {
		requireStream(other == nil)
	}

	streams := append([]Stream[T]{s}, others...)

	// a method of Stream[T] must not instantiate Stream[Stream[T]]
	return func() Cursor[T] {
		return &flatCursor[T]{
			outer: &sliceCursor[Stream[T]]{slices: [][]Stream[T]{streams}},
		}
	}
}

// flatCursor keeps the cursor of the current inner stream, and moves on to the next non-empty
// inner stream only once the current one is exhausted.
type flatCursor[T any] struct {
	outer Cursor[Stream[T]]
	inner Cursor[T]
	err   error
}

// ensureInner makes inner a cursor with an element available, or records the error of pulling the
// next inner stream. It returns false if the outer cursor is exhausted.
func (c *flatCursor[T]) ensureInner() bool {
	if c.err != nil {
		return true
	}

	for c.inner == nil || !c.inner.HasMore() {
		c.inner = nil

		if !c.outer.HasMore() {
			return false
		}

		stream, err := c.outer.Advance()
		if err != nil {
			c.err = err
			return true
		}

		if stream != nil {
			c.inner = stream()
		}
	}

	return true
}

func (c *flatCursor[T]) HasMore() bool {
	return c.ensureInner()
}

func (c *flatCursor[T]) Advance() (T, error) {
	var zero T

	if !c.ensureInner() {
		return zero, ErrEndOfSequence
	}

	if err := c.err; err != nil {
		c.err = nil
		return zero, err
	}

	return c.inner.Advance()
}
