package generators

// JoinGenerator is a generator over the elements of several generators, in order.
type JoinGenerator[T any] struct {
	gens []Generator[T]
}

// FromCursor returns a generator over the elements of cursor i.
// The generator is always live.
func FromCursor[T any, C Cursor[T]](i C) *CursorGenerator[T, C] {
	return &CursorGenerator[T, C]{i: i}
}

// FromRange returns a generator over the elements of cursor i that is live until i reaches j.
func FromRange[T any, C interface {
	Cursor[T]
	Comparable[S]
}, S any](i C, j S) *DelimitedGenerator[T, C, S] {
	return &DelimitedGenerator[T, C, S]{
		CursorGenerator: CursorGenerator[T, C]{i: i},
		j:               j,
	}
}

// FromProducer returns a generator over the elements produced by p.
// p is called once immediately to fetch the first element.
func FromProducer[T any](p Producer[T]) *FuncGenerator[T] {
	return &FuncGenerator[T]{
		f:     p,
		value: p.Produce(),
	}
}

// FromFunc returns a generator over the elements returned by f.
// f is called once immediately to fetch the first element.
func FromFunc[T any](f func() T) *FuncGenerator[T] {
	return FromProducer[T](ProducerFunc[T](f))
}

// Constant returns a generator that produces v forever.
func Constant[T any](v T) *ConstantGenerator[T] {
	return &ConstantGenerator[T]{v: v}
}

// Terminated returns a generator over the elements of cursor i that is live until the
// current element satisfies term.
func Terminated[T any, C Cursor[T]](i C, term func(T) bool) *TerminatedGenerator[T, C] {
	return &TerminatedGenerator[T, C]{
		i:    i,
		term: term,
	}
}

// Slice returns a generator over the elements of s, in order.
func Slice[T any](s []T) *DelimitedGenerator[T, *SliceCursor[T], *SliceCursor[T]] {
	return FromRange[T](Begin(s), End(s))
}

// Produce returns a generator over the elements of the given slices, in order.
func Produce[T any](slices ...[]T) *JoinGenerator[T] {
	gens := make([]Generator[T], len(slices))
	for i, s := range slices {
		gens[i] = Slice(s)
	}

	return Join(gens...)
}

// Join returns a generator over the elements of the given generators, in order.
// Each generator is drained before moving on to the next.
func Join[T any](generators ...Generator[T]) *JoinGenerator[T] {
	return &JoinGenerator[T]{gens: generators}
}

// Category implements Generator.
func (g *JoinGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *JoinGenerator[T]) Live() bool {
	g.skipExhausted()
	return len(g.gens) != 0
}

// Value implements Generator.
func (g *JoinGenerator[T]) Value() T {
	g.skipExhausted()
	return g.gens[0].Value()
}

// Advance implements Generator.
func (g *JoinGenerator[T]) Advance() {
	g.skipExhausted()
	g.gens[0].Advance()
}

// skipExhausted drops leading generators that are no longer live.
func (g *JoinGenerator[T]) skipExhausted() {
	for len(g.gens) != 0 && !g.gens[0].Live() {
		g.gens = g.gens[1:]
	}
}
