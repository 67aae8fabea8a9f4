package generators

// Cursor is a positional handle into an underlying sequence.
type Cursor[T any] interface {
	// Get returns the element at the current position.
	Get() T

	// Advance moves to the next position.
	Advance()
}

// OutputCursor is a positional handle that elements can be written through.
type OutputCursor[T any] interface {
	// Set writes elem at the current position.
	Set(elem T)

	// Advance moves to the next position.
	Advance()
}

// Comparable is implemented by cursors that can be compared to a value of type S,
// usually another cursor of the same type used as a sentinel.
type Comparable[S any] interface {
	// Equal returns true if the receiver is at the same position as other.
	Equal(other S) bool
}

// Validator is implemented by cursors that know whether they can be dereferenced.
type Validator interface {
	// Valid returns true if Get may be called.
	Valid() bool
}

// SliceCursor is a cursor over the elements of a slice.
// It is both a Cursor and an OutputCursor, and is Comparable to other SliceCursors.
type SliceCursor[T any] struct {
	s []T
	i int
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s []T) *SliceCursor[T] {
	return &SliceCursor[T]{s: s}
}

// End returns a cursor one past the last element of s, to be used as a sentinel.
func End[T any](s []T) *SliceCursor[T] {
	return &SliceCursor[T]{s: s, i: len(s)}
}

// At returns a cursor at index i of s.
func At[T any](s []T, i int) *SliceCursor[T] {
	return &SliceCursor[T]{s: s, i: i}
}

// Get implements Cursor.
func (c *SliceCursor[T]) Get() T {
	return c.s[c.i]
}

// Set implements OutputCursor.
func (c *SliceCursor[T]) Set(elem T) {
	c.s[c.i] = elem
}

// Advance implements Cursor and OutputCursor.
func (c *SliceCursor[T]) Advance() {
	c.i++
}

// Valid implements Validator.
func (c *SliceCursor[T]) Valid() bool {
	return c.i >= 0 && c.i < len(c.s)
}

// Index returns the current position.
func (c *SliceCursor[T]) Index() int {
	return c.i
}

// Clone implements Cloner.
func (c *SliceCursor[T]) Clone() *SliceCursor[T] {
	return &SliceCursor[T]{s: c.s, i: c.i}
}

// Equal implements Comparable.
// Two cursors are equal if they point into the same slice at the same index.
func (c *SliceCursor[T]) Equal(other *SliceCursor[T]) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.i == other.i && sameSlice(c.s, other.s)
}

// sameSlice returns true if a and b share the same backing array and length.
func sameSlice[T any](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}

	return &a[:cap(a)][0] == &b[:cap(b)][0]
}

// Appender is an output cursor that appends to a slice.
// Advance is a no-op since every Set appends a new element.
type Appender[T any] struct {
	s *[]T
}

// Append returns an output cursor that appends to *s.
func Append[T any](s *[]T) *Appender[T] {
	return &Appender[T]{s: s}
}

// Set implements OutputCursor.
func (a *Appender[T]) Set(elem T) {
	*a.s = append(*a.s, elem)
}

// Advance implements OutputCursor.
func (a *Appender[T]) Advance() {}
