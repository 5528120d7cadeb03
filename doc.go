// Package lazystreams provides lazily evaluated pipelines over sequences of elements.
//
// A Stream describes a pipeline stage: a source of elements, or a transformation of one or more
// upstream streams. Building a pipeline never touches any data. Work happens only when a consumer
// requests a Cursor by calling the stream, and then pulls elements through HasMore and Advance.
// Every call of a stream returns a fresh, independent cursor, so a pipeline may be consumed any
// number of times.
//
// Intermediate stages (Map, Filter, Take, Distinct, Flatten, ...) pull from their upstream cursors
// only as far as needed to answer the downstream request. Sort and GroupBy are deferred but greedy:
// they drain their upstream completely when a cursor is requested. Sorting or grouping an infinite
// stream therefore never yields an element, which is the caller's responsibility to avoid.
//
// Terminal operations (Reduce, ToSlice, ToMap, Length, Join, First, Some, ...) consume a cursor
// and return a result along with the first error encountered.
//
// Constructors validate their arguments eagerly and panic with an error wrapping
// ErrInvalidArgument for nil callbacks, nil streams, and negative counts.
//
// Pipelines are evaluated synchronously on the calling goroutine. A stream may be shared freely,
// but a single cursor must not be used concurrently.
package lazystreams
