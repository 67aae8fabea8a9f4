package generators

import "iter"

// SeqGenerator is a generator over the values of an iter.Seq.
// Like FuncGenerator, it fetches the current element eagerly.
type SeqGenerator[T any] struct {
	next  func() (T, bool)
	value T
	live  bool
}

// All returns an iterator over the elements produced by g.
// The iterator stops when g is exhausted, or when the loop body breaks.
func All[T any](g Generator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Live() {
			elem := g.Value()
			g.Advance()

			if !yield(elem) {
				return
			}
		}
	}
}

// FromSeq returns a generator over the values of seq, and a function to stop it.
// The generator is live until seq has no more values. The stop function must be called
// when the generator is no longer used, unless it has been exhausted.
func FromSeq[T any](seq iter.Seq[T]) (*SeqGenerator[T], func()) {
	next, stop := iter.Pull(seq)

	g := &SeqGenerator[T]{next: next}
	g.value, g.live = next()

	return g, stop
}

// Category implements Generator.
func (g *SeqGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *SeqGenerator[T]) Live() bool {
	return g.live
}

// Value implements Generator.
func (g *SeqGenerator[T]) Value() T {
	return g.value
}

// Advance implements Generator.
func (g *SeqGenerator[T]) Advance() {
	g.value, g.live = g.next()
}

// Sink returns a function that offers the values of a sequence to c, until the sequence ends
// or c rejects a value. The function returns the number of values c accepted.
func Sink[T any](c Consumer[T]) func(iter.Seq[T]) uint64 {
	return func(seq iter.Seq[T]) uint64 {
		accepted := uint64(0)

		for elem := range seq {
			if !c.Accept(elem) {
				break
			}

			accepted++
		}

		return accepted
	}
}
