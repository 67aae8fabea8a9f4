package generators

import "golang.org/x/exp/slices"

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream generator.
type MapperFunc[T any, U any] func(elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream generator.
type PredicateFunc[T any] func(elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// MapGenerator is a generator mapping the elements of an upstream generator.
type MapGenerator[T any, U any] struct {
	src    Generator[T]
	mapp   MapperFunc[T, U]
	index  uint64
	value  U
	mapped bool
}

// FilterGenerator is a generator over the elements of an upstream generator that match a predicate.
type FilterGenerator[T any] struct {
	src    Generator[T]
	filter PredicateFunc[T]
	index  uint64
	primed bool
}

// PeekGenerator is a generator that calls a function for each element of an upstream generator
// that it advances past.
type PeekGenerator[T any] struct {
	src   Generator[T]
	peek  EachFunc[T]
	index uint64
}

// LimitGenerator is a generator over at most a fixed number of elements of an upstream generator.
type LimitGenerator[T any] struct {
	src  Generator[T]
	max  uint64
	done uint64
}

// SkipGenerator is a generator over the elements of an upstream generator, without the first few.
type SkipGenerator[T any] struct {
	src  Generator[T]
	num  uint64
	done bool
}

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T, _ uint64) T {
		return elem
	}
}

// Map returns a generator that calls mapp for each element produced by g, mapping it to type U.
// mapp is called at most once per element, when the element is first read.
func Map[T any, U any](g Generator[T], mapp MapperFunc[T, U]) *MapGenerator[T, U] {
	return &MapGenerator[T, U]{
		src:  g,
		mapp: mapp,
	}
}

// Category implements Generator.
func (g *MapGenerator[T, U]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *MapGenerator[T, U]) Live() bool {
	return g.src.Live()
}

// Value implements Generator.
func (g *MapGenerator[T, U]) Value() U {
	if !g.mapped {
		g.value = g.mapp(g.src.Value(), g.index)
		g.mapped = true
	}

	return g.value
}

// Advance implements Generator.
func (g *MapGenerator[T, U]) Advance() {
	g.src.Advance()
	g.index++
	g.mapped = false
}

// Filter returns a generator that only produces the elements produced by g for which filter returns true.
// The index passed to filter is the index of the element in g.
func Filter[T any](g Generator[T], filter PredicateFunc[T]) *FilterGenerator[T] {
	return &FilterGenerator[T]{
		src:    g,
		filter: filter,
	}
}

// Category implements Generator.
func (g *FilterGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *FilterGenerator[T]) Live() bool {
	g.prime()
	return g.src.Live()
}

// Value implements Generator.
func (g *FilterGenerator[T]) Value() T {
	g.prime()
	return g.src.Value()
}

// Advance implements Generator.
func (g *FilterGenerator[T]) Advance() {
	g.prime()
	g.src.Advance()
	g.index++
	g.primed = false
}

// prime advances the upstream generator to the next matching element.
func (g *FilterGenerator[T]) prime() {
	if g.primed {
		return
	}

	for g.src.Live() && !g.filter(g.src.Value(), g.index) {
		g.src.Advance()
		g.index++
	}

	g.primed = true
}

// Peek returns a generator that produces the same elements as g, in order, and calls peek
// for each element it advances past. The result of peek is ignored.
func Peek[T any](g Generator[T], peek EachFunc[T]) *PeekGenerator[T] {
	return &PeekGenerator[T]{
		src:  g,
		peek: peek,
	}
}

// Category implements Generator.
func (g *PeekGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *PeekGenerator[T]) Live() bool {
	return g.src.Live()
}

// Value implements Generator.
func (g *PeekGenerator[T]) Value() T {
	return g.src.Value()
}

// Advance implements Generator.
func (g *PeekGenerator[T]) Advance() {
	g.peek(g.src.Value(), g.index)
	g.src.Advance()
	g.index++
}

// Limit returns a generator that produces the same elements as g, in order, up to max elements.
// It is the way to bound generators that are always live, such as those returned by FromFunc and Constant.
func Limit[T any](g Generator[T], max uint64) *LimitGenerator[T] {
	return &LimitGenerator[T]{
		src: g,
		max: max,
	}
}

// Category implements Generator.
func (g *LimitGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *LimitGenerator[T]) Live() bool {
	return g.done < g.max && g.src.Live()
}

// Value implements Generator.
func (g *LimitGenerator[T]) Value() T {
	return g.src.Value()
}

// Advance implements Generator.
func (g *LimitGenerator[T]) Advance() {
	g.src.Advance()
	g.done++
}

// Skip returns a generator that produces the same elements as g, in order, skipping the first num elements.
// The elements are skipped when the new generator is first used.
func Skip[T any](g Generator[T], num uint64) *SkipGenerator[T] {
	return &SkipGenerator[T]{
		src: g,
		num: num,
	}
}

// Category implements Generator.
func (g *SkipGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *SkipGenerator[T]) Live() bool {
	g.skip()
	return g.src.Live()
}

// Value implements Generator.
func (g *SkipGenerator[T]) Value() T {
	g.skip()
	return g.src.Value()
}

// Advance implements Generator.
func (g *SkipGenerator[T]) Advance() {
	g.skip()
	g.src.Advance()
}

func (g *SkipGenerator[T]) skip() {
	if g.done {
		return
	}

	for i := uint64(0); i < g.num && g.src.Live(); i++ {
		g.src.Advance()
	}

	g.done = true
}

// Sort consumes all elements produced by g, sorts them using less, and returns a generator
// producing them in sorted order. g must not be always live.
func Sort[T any](g Generator[T], less LessFunc[T]) Generator[T] {
	result := []T{}

	Each(g, func(elem T, _ uint64) bool {
		result = append(result, elem)
		return true
	})

	slices.SortFunc(result, less)

	return Slice(result)
}
