package generators

import "github.com/rs/zerolog"

// TracedGenerator is a generator that logs the progress of the generator it wraps.
type TracedGenerator[T any] struct {
	g         Generator[T]
	log       zerolog.Logger
	index     uint64
	exhausted bool
}

// TracedConsumer is a consumer that logs the elements accepted and rejected by the consumer it wraps.
type TracedConsumer[T any] struct {
	c     Consumer[T]
	log   zerolog.Logger
	index uint64
}

// Trace returns a generator that produces the same elements as g and logs a debug event
// each time it advances, and once when g is first found to be exhausted.
func Trace[T any](g Generator[T], log zerolog.Logger) *TracedGenerator[T] {
	return &TracedGenerator[T]{
		g:   g,
		log: log,
	}
}

// Category implements Generator.
func (g *TracedGenerator[T]) Category() Category {
	return BasicCategory
}

// Live implements Generator.
func (g *TracedGenerator[T]) Live() bool {
	live := g.g.Live()

	if !live && !g.exhausted {
		g.exhausted = true
		g.log.Debug().Uint64("index", g.index).Msg("exhausted")
	}

	return live
}

// Value implements Generator.
func (g *TracedGenerator[T]) Value() T {
	return g.g.Value()
}

// Advance implements Generator.
func (g *TracedGenerator[T]) Advance() {
	g.log.Debug().Uint64("index", g.index).Msg("advance")

	g.g.Advance()
	g.index++
}

// TraceConsumer returns a consumer that forwards elements to c and logs a debug event
// for each element c accepts or rejects.
func TraceConsumer[T any](c Consumer[T], log zerolog.Logger) *TracedConsumer[T] {
	return &TracedConsumer[T]{
		c:   c,
		log: log,
	}
}

// Accept implements Consumer.
func (c *TracedConsumer[T]) Accept(elem T) bool {
	if !c.c.Accept(elem) {
		c.log.Debug().Uint64("index", c.index).Msg("reject")
		return false
	}

	c.log.Debug().Uint64("index", c.index).Msg("accept")
	c.index++

	return true
}
