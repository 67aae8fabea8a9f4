package generators

import "errors"

// Category marks a type as a generator. BasicCategory is its only value.
type Category struct{}

// BasicCategory is the one and only generator category.
var BasicCategory = Category{}

// Generator is a pull-based lazy sequence of elements.
//
// Value and Advance are unchecked: they must only be called while Live returns true.
// Use Get, Next, or Pull for checked access.
type Generator[T any] interface {
	// Category identifies the implementation as a generator.
	Category() Category

	// Live returns true if the generator may still be dereferenced and advanced.
	Live() bool

	// Value returns the current element.
	Value() T

	// Advance moves to the next element.
	Advance()
}

// ErrExhausted is the error returned by checked operations on a generator that is no longer live.
var ErrExhausted = errors.New("generator exhausted")

// Get returns the current element of g.
// If g is not live, it returns ErrExhausted.
func Get[T any](g Generator[T]) (T, error) {
	if !g.Live() {
		var zero T
		return zero, ErrExhausted
	}

	return g.Value(), nil
}

// Next advances g.
// If g is not live, it returns ErrExhausted and does not advance.
func Next[T any](g Generator[T]) error {
	if !g.Live() {
		return ErrExhausted
	}

	g.Advance()

	return nil
}

// Pull returns the current element of g and advances g.
// If g is not live, it returns ErrExhausted.
func Pull[T any](g Generator[T]) (T, error) {
	elem, err := Get(g)
	if err != nil {
		return elem, err
	}

	g.Advance()

	return elem, nil
}
