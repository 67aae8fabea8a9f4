package generators

import (
	"testing"

	"github.com/matryer/is"
)

func TestFromCursor(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen := FromCursor[int](Begin(ints))

	for _, want := range ints {
		is.True(gen.Live())
		is.Equal(gen.Value(), want)
		gen.Advance()
	}

	is.True(gen.Live())
	is.Equal(gen.Cursor().Index(), 3)
}

func TestFromCursor_Equal(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen1 := FromCursor[int](Begin(ints))
	gen2 := FromCursor[int](Begin(ints))

	is.True(gen1.Equal(gen2))

	gen1.Advance()
	is.True(!gen1.Equal(gen2))

	gen2.Advance()
	is.True(gen1.Equal(gen2))

	other := FromCursor[int](At([]int{1, 2, 3}, 1))
	is.True(!gen1.Equal(other))
}

func TestFromRange(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen := FromRange[int](Begin(ints), End(ints))

	for _, want := range ints {
		is.True(gen.Live())
		is.Equal(gen.Value(), want)
		gen.Advance()
	}

	is.True(!gen.Live())
	is.True(!gen.Live())
	is.True(gen.Cursor().Equal(gen.Sentinel()))
}

func TestFromRange_Empty(t *testing.T) {
	is := is.New(t)

	is.True(!Slice([]int{}).Live())
	is.True(!Slice[int](nil).Live())
}

func TestFromRange_Equal(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen1 := FromRange[int](Begin(ints), End(ints))
	gen2 := FromRange[int](Begin(ints), At(ints, 2))

	is.True(gen1.Equal(gen2))

	gen2.Advance()
	is.True(!gen1.Equal(gen2))
}

func TestFromProducer(t *testing.T) {
	is := is.New(t)

	gen := FromProducer[int](NewCounter(0, 1))

	is.True(gen.Live())
	is.Equal(gen.Value(), 0)
	is.Equal(gen.Value(), 0)

	gen.Advance()

	is.True(gen.Live())
	is.Equal(gen.Value(), 1)
}

func TestFromProducer_Equal(t *testing.T) {
	is := is.New(t)

	gen1 := FromProducer[int](NewCounter(0, 1))
	gen2 := FromProducer[int](NewCounter(0, 1))

	is.True(gen1.Equal(gen2))

	gen1.Advance()
	is.True(!gen1.Equal(gen2))

	gen2.Advance()
	is.True(gen1.Equal(gen2))

	gen3 := FromProducer[int](NewCounter(1, 2))
	is.Equal(gen3.Value(), 1)
	is.True(!gen1.Equal(gen3))
}

func TestFromFunc(t *testing.T) {
	is := is.New(t)

	calls := 0

	next := func() int {
		calls++
		return calls * 10
	}

	gen := FromFunc(next)

	is.Equal(calls, 1)
	is.Equal(gen.Value(), 10)
	is.Equal(gen.Value(), 10)
	is.Equal(calls, 1)

	gen.Advance()

	is.Equal(calls, 2)
	is.Equal(gen.Value(), 20)
	is.True(gen.Live())
}

func TestFromFunc_Equal(t *testing.T) {
	is := is.New(t)

	next := func() int {
		return 1
	}

	gen1 := FromFunc(next)
	gen2 := FromFunc(next)

	is.True(gen1.Equal(gen1))
	is.True(!gen1.Equal(gen2))
}

func TestConstant(t *testing.T) {
	is := is.New(t)

	gen := Constant(7)

	for i := 0; i < 10; i++ {
		is.True(gen.Live())
		is.Equal(gen.Value(), 7)
		gen.Advance()
	}

	is.True(gen.Equal(Constant(7)))
	is.True(!gen.Equal(Constant(8)))
}

type boxed struct {
	v any
}

func TestConstant_NotComparableField(t *testing.T) {
	is := is.New(t)

	gen := Constant(boxed{[]int{1}})

	is.True(gen.Equal(Constant(boxed{[]int{1}})))
	is.True(!gen.Equal(Constant(boxed{[]int{2}})))
	is.True(gen.Equal(gen.Clone()))
}

func TestConstant_NotComparable(t *testing.T) {
	is := is.New(t)

	gen := Constant([]int{1, 2})

	is.True(gen.Equal(Constant([]int{1, 2})))
	is.True(!gen.Equal(Constant([]int{1})))
}

func TestTerminated(t *testing.T) {
	is := is.New(t)

	ints := []int{2, 4, 6, 7, 8}

	gen := Terminated[int](Begin(ints), odd)

	result := []int{}
	for gen.Live() {
		result = append(result, gen.Value())
		gen.Advance()
	}

	is.Equal(result, []int{2, 4, 6})
	is.Equal(gen.Value(), 7)
	is.Equal(gen.Cursor().Index(), 3)
}

func TestTerminated_Terminator(t *testing.T) {
	is := is.New(t)

	str := []byte("abc\x00def")

	gen := Terminated[byte](Begin(str), func(b byte) bool {
		return b == 0
	})

	result, _ := ReduceSlice[byte](gen)

	is.Equal(string(result), "abc")
}

func TestTerminated_InvalidCursor(t *testing.T) {
	is := is.New(t)

	called := 0

	gen := Terminated[int](Begin([]int{2, 4}), func(elem int) bool {
		called++
		return odd(elem)
	})

	is.True(gen.Live())
	gen.Advance()
	is.True(gen.Live())
	gen.Advance()

	called = 0

	is.True(!gen.Live())
	is.Equal(called, 0)
}

func TestProduce(t *testing.T) {
	is := is.New(t)

	result, _ := ReduceSlice[int](Produce([]int{1, 2}, []int{3, 4, 5}))

	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestProduce_EmptySlices(t *testing.T) {
	is := is.New(t)

	result, _ := ReduceSlice[int](Produce([]int{}, []int{1}, nil, []int{2}, []int{}))

	is.Equal(result, []int{1, 2})

	is.True(!Produce[int]().Live())
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	gen := Join[int](Slice([]int{1, 2}), Limit[int](Constant(9), 2), Slice([]int{3}))

	result, _ := ReduceSlice[int](gen)

	is.Equal(result, []int{1, 2, 9, 9, 3})
}

func odd(elem int) bool {
	return elem%2 != 0
}

func TestFromRange_Clone(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen1 := FromRange[int](Begin(ints), End(ints))
	gen2 := gen1.Clone()

	gen2.Advance()

	is.Equal(gen1.Value(), 1)
	is.Equal(gen2.Value(), 2)
	is.True(!gen1.Equal(gen2))

	gen1.Advance()

	is.True(gen1.Equal(gen2))
	is.True(gen1.Sentinel() == gen2.Sentinel())
}

func TestFromCursor_Clone(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}

	gen1 := FromCursor[int](Begin(ints))
	gen2 := gen1.Clone()

	gen2.Advance()
	gen2.Advance()

	is.Equal(gen1.Value(), 1)
	is.Equal(gen2.Value(), 3)
	is.True(gen1.Cursor() != gen2.Cursor())
}

func TestFromProducer_Clone(t *testing.T) {
	is := is.New(t)

	gen1 := FromProducer[int](NewCounter(0, 1))
	gen2 := gen1.Clone()

	is.True(gen1.Equal(gen2))

	gen1.Advance()
	gen2.Advance()

	is.Equal(gen1.Value(), 1)
	is.Equal(gen2.Value(), 1)
	is.True(gen1.Equal(gen2))

	gen2.Advance()

	is.Equal(gen1.Value(), 1)
	is.Equal(gen2.Value(), 2)
	is.True(!gen1.Equal(gen2))
}

func TestFromFunc_Clone(t *testing.T) {
	is := is.New(t)

	n := 0

	gen1 := FromFunc(func() int {
		n++
		return n
	})
	gen2 := gen1.Clone()

	is.Equal(gen2.Value(), 1)

	gen2.Advance()

	is.Equal(gen1.Value(), 1)
	is.Equal(gen2.Value(), 2)
	is.Equal(n, 2)
}

func TestTerminated_Clone(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 0}

	gen1 := Terminated[int](Begin(ints), func(v int) bool { return v == 0 })
	gen2 := gen1.Clone()

	gen2.Advance()
	gen2.Advance()

	is.True(gen1.Live())
	is.Equal(gen1.Value(), 1)
	is.True(!gen2.Live())
	is.Equal(gen1.Cursor().Index(), 0)
}
