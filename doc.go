// Package generators provides pull-based generators and push-based consumers, and the
// machinery to adapt cursors, callables and predicate-bounded ranges to them.
//
// A Generator is a cursor over a lazy sequence that knows whether it is exhausted: it is
// driven by checking Live, reading Value, and calling Advance. Generators are constructed
// from cursors (FromCursor, FromRange), callables (FromFunc, FromProducer), a single value
// (Constant), or a cursor and a termination predicate (Terminated).
//
// A Consumer is a sink that accepts one value at a time. Accept returns false once the sink
// is full, and keeps returning false from then on. Consumers are constructed from output
// cursors (ToCursor, ToRange) or plain functions (ConsumerFunc).
//
// As and AsConsumer normalize values of unknown type into a generator or consumer,
// preferring a value that already implements the protocol over adapting it.
//
// Generator methods are unchecked: calling Value or Advance on a generator that is not
// live is a caller error. The package functions Get, Next and Pull perform the same
// operations but return ErrExhausted instead.
//
// Generators and consumers are not safe for concurrent use.
package generators
