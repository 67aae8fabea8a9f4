package generators

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Cloner is implemented by cursors and producers that can be copied along with their state,
// so that advancing the copy does not affect the original.
type Cloner[C any] interface {
	Clone() C
}

// CursorGenerator is a generator over an unbounded cursor. It is always live, so the
// caller must know when to stop, or use DelimitedGenerator instead.
type CursorGenerator[T any, C Cursor[T]] struct {
	i C
}

// Producer produces the next element of a sequence on each call.
type Producer[T any] interface {
	Produce() T
}

// ProducerFunc adapts an ordinary function to a Producer.
type ProducerFunc[T any] func() T

// FuncGenerator is a generator over the elements returned by a Producer.
// The current element is fetched eagerly: once on construction and once on every Advance.
// Value returns the cached element without calling the producer.
type FuncGenerator[T any] struct {
	f     Producer[T]
	value T
}

// Counter is a Producer of integers, counting up from a start value by a step.
// Counters are comparable: two counters are equal if they will produce the same elements.
type Counter[T constraints.Integer] struct {
	next T
	step T
}

// ConstantGenerator is a generator that produces the same element forever.
type ConstantGenerator[T any] struct {
	v T
}

// TerminatedGenerator is a generator over a cursor that is live until the current element
// satisfies a termination predicate.
//
// Live dereferences the cursor, so the cursor must be dereferenceable at the logical end of
// the sequence, for example a terminator element. If the cursor implements Validator and
// reports that it is invalid, the generator is not live, and the predicate is not called.
type TerminatedGenerator[T any, C Cursor[T]] struct {
	i    C
	term func(T) bool
}

// Category implements Generator.
func (g *CursorGenerator[T, C]) Category() Category {
	return BasicCategory
}

// Live implements Generator. It always returns true.
func (g *CursorGenerator[T, C]) Live() bool {
	return true
}

// Value implements Generator.
func (g *CursorGenerator[T, C]) Value() T {
	return g.i.Get()
}

// Advance implements Generator.
func (g *CursorGenerator[T, C]) Advance() {
	g.i.Advance()
}

// Cursor returns the wrapped cursor.
func (g *CursorGenerator[T, C]) Cursor() C {
	return g.i
}

// Clone returns a generator at the same position as g that can be advanced independently.
// If the cursor does not implement Cloner[C], the new generator shares it with g.
func (g *CursorGenerator[T, C]) Clone() *CursorGenerator[T, C] {
	return &CursorGenerator[T, C]{i: cloneOf(g.i)}
}

// Equal returns true if g and other wrap cursors at the same position.
// Cursors implementing Comparable are compared using Equal, other cursors by value.
func (g *CursorGenerator[T, C]) Equal(other *CursorGenerator[T, C]) bool {
	return cursorsEqual(g.i, other.i)
}

// DelimitedGenerator is a generator over a cursor that is live until the cursor reaches a sentinel.
type DelimitedGenerator[T any, C interface {
	Cursor[T]
	Comparable[S]
}, S any] struct {
	CursorGenerator[T, C]

	j S
}

// Live implements Generator.
func (g *DelimitedGenerator[T, C, S]) Live() bool {
	return !g.i.Equal(g.j)
}

// Sentinel returns the wrapped sentinel.
func (g *DelimitedGenerator[T, C, S]) Sentinel() S {
	return g.j
}

// Clone returns a generator at the same position as g that can be advanced independently.
// If the cursor does not implement Cloner[C], the new generator shares it with g.
func (g *DelimitedGenerator[T, C, S]) Clone() *DelimitedGenerator[T, C, S] {
	return &DelimitedGenerator[T, C, S]{
		CursorGenerator: CursorGenerator[T, C]{i: cloneOf(g.i)},
		j:               g.j,
	}
}

// Equal returns true if g and other wrap cursors at the same position.
// The sentinels are not compared.
func (g *DelimitedGenerator[T, C, S]) Equal(other *DelimitedGenerator[T, C, S]) bool {
	return g.CursorGenerator.Equal(&other.CursorGenerator)
}

// Produce implements Producer.
func (f ProducerFunc[T]) Produce() T {
	return f()
}

// Category implements Generator.
func (g *FuncGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator. It always returns true.
func (g *FuncGenerator[T]) Live() bool {
	return true
}

// Value implements Generator.
func (g *FuncGenerator[T]) Value() T {
	return g.value
}

// Advance implements Generator.
func (g *FuncGenerator[T]) Advance() {
	g.value = g.f.Produce()
}

// Clone returns a generator with the same current element as g that can be advanced independently.
// If the producer does not implement Cloner[Producer[T]], the new generator shares it with g.
func (g *FuncGenerator[T]) Clone() *FuncGenerator[T] {
	return &FuncGenerator[T]{
		f:     cloneOf(g.f),
		value: g.value,
	}
}

// Equal returns true if g and other have equal producers and the same current element.
// Producers implementing Comparable[Producer[T]] are compared using Equal, producers of a
// comparable type by value. Other producers, such as ProducerFunc, are only equal to
// themselves through the same generator.
func (g *FuncGenerator[T]) Equal(other *FuncGenerator[T]) bool {
	if g == other {
		return true
	}

	return producersEqual(g.f, other.f) && equalValues(g.value, other.value)
}

// NewCounter returns a counter producing start, start+step, start+2*step, and so on.
func NewCounter[T constraints.Integer](start T, step T) *Counter[T] {
	return &Counter[T]{
		next: start,
		step: step,
	}
}

// Produce implements Producer.
func (c *Counter[T]) Produce() T {
	v := c.next
	c.next += c.step

	return v
}

// Clone implements Cloner.
func (c *Counter[T]) Clone() Producer[T] {
	return &Counter[T]{
		next: c.next,
		step: c.step,
	}
}

// Equal implements Comparable.
func (c *Counter[T]) Equal(other Producer[T]) bool {
	o, ok := other.(*Counter[T])
	if !ok || c == nil || o == nil {
		return ok && c == o
	}

	return c.next == o.next && c.step == o.step
}

// Category implements Generator.
func (g *ConstantGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator. It always returns true.
func (g *ConstantGenerator[T]) Live() bool {
	return true
}

// Value implements Generator.
func (g *ConstantGenerator[T]) Value() T {
	return g.v
}

// Advance implements Generator. It does nothing.
func (g *ConstantGenerator[T]) Advance() {}

// Clone returns a copy of g.
func (g *ConstantGenerator[T]) Clone() *ConstantGenerator[T] {
	return &ConstantGenerator[T]{v: g.v}
}

// Equal returns true if g and other produce the same element.
func (g *ConstantGenerator[T]) Equal(other *ConstantGenerator[T]) bool {
	return equalValues(g.v, other.v)
}

// Category implements Generator.
func (g *TerminatedGenerator[T, C]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *TerminatedGenerator[T, C]) Live() bool {
	if v, ok := any(g.i).(Validator); ok && !v.Valid() {
		return false
	}

	return !g.term(g.i.Get())
}

// Value implements Generator.
func (g *TerminatedGenerator[T, C]) Value() T {
	return g.i.Get()
}

// Advance implements Generator.
func (g *TerminatedGenerator[T, C]) Advance() {
	g.i.Advance()
}

// Cursor returns the wrapped cursor.
func (g *TerminatedGenerator[T, C]) Cursor() C {
	return g.i
}

// Clone returns a generator at the same position as g that can be advanced independently.
// If the cursor does not implement Cloner[C], the new generator shares it with g.
func (g *TerminatedGenerator[T, C]) Clone() *TerminatedGenerator[T, C] {
	return &TerminatedGenerator[T, C]{
		i:    cloneOf(g.i),
		term: g.term,
	}
}

func cursorsEqual[C any](a C, b C) bool {
	if eq, ok := any(a).(Comparable[C]); ok {
		return eq.Equal(b)
	}

	return equalValues(a, b)
}

func producersEqual[T any](a Producer[T], b Producer[T]) bool {
	if eq, ok := a.(Comparable[Producer[T]]); ok {
		return eq.Equal(b)
	}

	return equalValues(a, b)
}

// equalValues compares a and b using == if both values are comparable, and reflect.DeepEqual otherwise.
// Comparability is checked on the dynamic values, so interface fields holding slices or maps do not panic.
// Non-nil functions are never equal.
func equalValues(a any, b any) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) {
		return ta == nil && b == nil
	}

	if reflect.ValueOf(a).Comparable() && reflect.ValueOf(b).Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

// cloneOf returns a copy of x with its own state, if x implements Cloner[C].
// Otherwise it returns x itself.
func cloneOf[C any](x C) C {
	if c, ok := any(x).(Cloner[C]); ok {
		return c.Clone()
	}

	return x
}
