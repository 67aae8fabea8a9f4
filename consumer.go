package generators

// Consumer is a push-based sink accepting elements one at a time.
//
// Accept returns true if elem was accepted and more elements may be offered, or false if
// elem was rejected because the consumer is full. Once Accept has returned false, it must
// return false for every further element.
type Consumer[T any] interface {
	Accept(elem T) bool
}

// ConsumerFunc adapts an ordinary function to a Consumer.
type ConsumerFunc[T any] func(elem T) bool

// CursorConsumer is a consumer writing through an unbounded output cursor.
// It accepts every element.
type CursorConsumer[T any, C OutputCursor[T]] struct {
	i C
}

// BoundedConsumer is a consumer writing through an output cursor until it reaches a sentinel.
type BoundedConsumer[T any, C interface {
	OutputCursor[T]
	Comparable[S]
}, S any] struct {
	i C
	j S
}

// LatchedConsumer is a consumer that stops offering elements to the consumer it wraps
// as soon as that consumer rejects one.
type LatchedConsumer[T any] struct {
	c    Consumer[T]
	dead bool
}

// Accept implements Consumer.
func (f ConsumerFunc[T]) Accept(elem T) bool {
	return f(elem)
}

// ToCursor returns a consumer that writes elements through i.
func ToCursor[T any, C OutputCursor[T]](i C) *CursorConsumer[T, C] {
	return &CursorConsumer[T, C]{i: i}
}

// Accept implements Consumer. It always returns true.
func (c *CursorConsumer[T, C]) Accept(elem T) bool {
	c.i.Set(elem)
	c.i.Advance()

	return true
}

// Cursor returns the wrapped cursor.
func (c *CursorConsumer[T, C]) Cursor() C {
	return c.i
}

// ToRange returns a consumer that writes elements through i until i reaches j.
// The consumer accepts at most as many elements as there are positions between i and j.
func ToRange[T any, C interface {
	OutputCursor[T]
	Comparable[S]
}, S any](i C, j S) *BoundedConsumer[T, C, S] {
	return &BoundedConsumer[T, C, S]{
		i: i,
		j: j,
	}
}

// Accept implements Consumer.
// If the cursor has reached the sentinel, it returns false without writing elem.
func (c *BoundedConsumer[T, C, S]) Accept(elem T) bool {
	if c.i.Equal(c.j) {
		return false
	}

	c.i.Set(elem)
	c.i.Advance()

	return true
}

// Cursor returns the wrapped cursor.
func (c *BoundedConsumer[T, C, S]) Cursor() C {
	return c.i
}

// Latch returns a consumer that forwards elements to c until c returns false once.
// From then on, it returns false without calling c.
func Latch[T any](c Consumer[T]) *LatchedConsumer[T] {
	return &LatchedConsumer[T]{c: c}
}

// Accept implements Consumer.
func (c *LatchedConsumer[T]) Accept(elem T) bool {
	if c.dead {
		return false
	}

	if !c.c.Accept(elem) {
		c.dead = true
	}

	return !c.dead
}

// Dead returns true if the wrapped consumer has rejected an element.
func (c *LatchedConsumer[T]) Dead() bool {
	return c.dead
}
