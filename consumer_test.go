package generators

import (
	"testing"

	"github.com/matryer/is"
)

func TestToCursor_Append(t *testing.T) {
	is := is.New(t)

	result := []int{}

	cons := ToCursor[int](Append(&result))

	is.True(cons.Accept(1))
	is.True(cons.Accept(2))
	is.True(cons.Accept(3))

	is.Equal(result, []int{1, 2, 3})
}

func TestToCursor_Slice(t *testing.T) {
	is := is.New(t)

	buf := make([]int, 3)

	cons := ToCursor[int](Begin(buf))

	is.True(cons.Accept(1))
	is.True(cons.Accept(2))

	is.Equal(buf, []int{1, 2, 0})
	is.Equal(cons.Cursor().Index(), 2)
}

func TestToRange(t *testing.T) {
	is := is.New(t)

	buf := make([]int, 2)

	cons := ToRange[int](Begin(buf), End(buf))

	is.True(cons.Accept(1))
	is.True(cons.Accept(2))
	is.True(!cons.Accept(3))
	is.True(!cons.Accept(4))

	is.Equal(buf, []int{1, 2})
	is.Equal(cons.Cursor().Index(), 2)
}

func TestToRange_Empty(t *testing.T) {
	is := is.New(t)

	buf := []int{}

	cons := ToRange[int](Begin(buf), End(buf))

	is.True(!cons.Accept(1))
}

func TestCopy_RoundTrip(t *testing.T) {
	is := is.New(t)

	ints := []int{4, 5, 6}

	buf := make([]int, len(ints))

	cons := ToRange[int](Begin(buf), End(buf))

	accepted := Copy[int](Slice(ints), cons)

	is.Equal(accepted, uint64(3))
	is.Equal(buf, ints)
	is.True(!cons.Accept(7))
}

func TestConsumerFunc(t *testing.T) {
	is := is.New(t)

	sum := 0

	cons := ConsumerFunc[int](func(elem int) bool {
		sum += elem
		return sum < 5
	})

	is.True(cons.Accept(2))
	is.True(!cons.Accept(3))
	is.Equal(sum, 5)
}

func TestLatch(t *testing.T) {
	is := is.New(t)

	calls := 0

	cons := Latch[int](ConsumerFunc[int](func(elem int) bool {
		calls++
		return elem%2 == 0
	}))

	is.True(cons.Accept(2))
	is.True(!cons.Dead())
	is.True(!cons.Accept(3))
	is.True(cons.Dead())
	is.True(!cons.Accept(4))

	is.Equal(calls, 2)
}
