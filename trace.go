package lazystreams

import (
	"errors"

	"github.com/rs/zerolog"
)

// Trace returns a stream that produces the same elements as s, logging their flow to logger at debug level.
// Each cursor logs an "element" event per element pulled, an "error" event per failed pull, and a
// single "exhausted" event once s runs out. Events carry the stage name and the 0-based index of
// the element.
func Trace[T any](s Stream[T], logger zerolog.Logger, stage string) Stream[T] {
	requireStream(s == nil)

	logger = logger.With().Str("stage", stage).Logger()

	return func() Cursor[T] {
		return &traceCursor[T]{
			upstream: s(),
			logger:   logger,
		}
	}
}

type traceCursor[T any] struct {
	upstream  Cursor[T]
	logger    zerolog.Logger
	index     uint64
	exhausted bool
}

func (c *traceCursor[T]) HasMore() bool {
	hasMore := c.upstream.HasMore()

	if !hasMore && !c.exhausted {
		c.exhausted = true
		c.logger.Debug().Uint64("count", c.index).Msg("exhausted")
	}

	return hasMore
}

func (c *traceCursor[T]) Advance() (T, error) {
	elem, err := c.upstream.Advance()

	switch {
	case errors.Is(err, ErrEndOfSequence):

	case err != nil:
		c.logger.Debug().Err(err).Uint64("index", c.index).Msg("error")
		c.index++

	default:
		c.logger.Debug().Interface("element", elem).Uint64("index", c.index).Msg("element")
		c.index++
	}

	return elem, err
}
