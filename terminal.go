package generators

// EachFunc is called for element elem. It returns false to stop iterating.
// The index is the 0-based index of elem, in the order produced by the generator.
type EachFunc[T any] func(elem T, index uint64) bool

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the generator.
// If it returns an error, the reduction stops.
type AccumulatorFunc[T any, A any] func(elem T, index uint64, acc A) (A, error)

// Each calls each for each element produced by g, until g is exhausted or each returns false.
// It returns the number of elements each was called for.
// If g is never exhausted and each never returns false, Each does not return.
func Each[T any](g Generator[T], each EachFunc[T]) uint64 {
	index := uint64(0)

	for g.Live() {
		elem := g.Value()
		g.Advance()

		index++

		if !each(elem, index-1) {
			break
		}
	}

	return index
}

// Copy offers each element produced by g to c, until g is exhausted or c rejects an element.
// It returns the number of elements c accepted.
// An element rejected by c has still been consumed from g.
func Copy[T any](g Generator[T], c Consumer[T]) uint64 {
	accepted := uint64(0)

	Each(g, func(elem T, _ uint64) bool {
		if !c.Accept(elem) {
			return false
		}

		accepted++

		return true
	})

	return accepted
}

// Reduce calls reduce for each element produced by g, folding it into accumulator acc, returning the final accumulator.
// If reduce returns an error, it returns the accumulator so far, and the error.
func Reduce[T any, A any](g Generator[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	var err error

	Each(g, func(elem T, index uint64) bool {
		acc, err = reduce(elem, index, acc)
		return err == nil
	})

	return acc, err
}

// ReduceSlice returns a slice of all elements produced by g.
func ReduceSlice[T any](g Generator[T]) ([]T, error) {
	return Reduce(g, nil, CollectSlice[T]())
}

// AnyMatch returns true as soon as pred returns true for an element produced by g, that is, an element matches.
func AnyMatch[T any](g Generator[T], pred PredicateFunc[T]) bool {
	anyMatch := false

	Each(g, func(elem T, index uint64) bool {
		anyMatch = pred(elem, index)
		return !anyMatch
	})

	return anyMatch
}

// AllMatch returns true if pred returns true for all elements produced by g, that is, all elements match.
// It stops at the first element that does not match.
func AllMatch[T any](g Generator[T], pred PredicateFunc[T]) bool {
	allMatch := true

	Each(g, func(elem T, index uint64) bool {
		allMatch = pred(elem, index)
		return allMatch
	})

	return allMatch
}

// Count returns the number of elements produced by g.
func Count[T any](g Generator[T]) uint64 {
	return Each(g, func(_ T, _ uint64) bool {
		return true
	})
}
