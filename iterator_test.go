package stride_test

import (
	"testing"

	"go.llib.dev/stride"
	"go.llib.dev/stride/cursorkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// iterators and walkers are positions themselves, of the category they wrap
var _ stride.RandomAccess[cursorkit.Index, int] = cursorkit.N(0)
var _ stride.RandomAccess[cursorkit.Slice[string], string] = cursorkit.Slice[string]{}
var _ stride.Mutable[cursorkit.Slice[string], string] = cursorkit.Slice[string]{}
var _ stride.RandomAccess[stride.Iterator[int, cursorkit.Index], int] = stride.Iterator[int, cursorkit.Index]{}
var _ stride.Bidirectional[stride.Walker[int, cursorkit.Index], int] = stride.Walker[int, cursorkit.Index]{}

func ExampleMake() {
	values := []int{10, 11, 12, 13, 14, 15}

	it := stride.Make[int](cursorkit.Begin(values), 2)

	_ = it.Value()               // 10
	_ = it.Next().Value()        // 12
	_ = it.Next().Next().Value() // 14
}

func TestMake(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("wrapping does not alter what the position points at", func(t *testcase.T) {
		vs := random(t, t.Random.IntB(1, 10))
		i := t.Random.IntN(len(vs))

		it := stride.Make[int](cursorkit.At(vs, i), t.Random.IntB(1, 42))
		assert.Equal(t, vs[i], it.Value())
	})

	s.Test("the strides count pre-advances the position by strides*stride natural steps", func(t *testcase.T) {
		var (
			size    = t.Random.IntB(1, 10)
			strides = t.Random.IntB(0, 10)
		)
		it := stride.Make[int](cursorkit.N(0), size, strides)
		assert.Equal(t, cursorkit.N(strides*size), it.Base())
	})

	s.Test("without a strides count the position stays where it was", func(t *testcase.T) {
		at := t.Random.IntB(0, 100)
		it := stride.Make[int](cursorkit.N(at), t.Random.IntB(1, 10))
		assert.Equal(t, cursorkit.N(at), it.Base())
	})

	s.Test("negative strides count moves the position backward", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(100), 10, -3)
		assert.Equal(t, cursorkit.N(70), it.Base())
	})
}

func TestIterator_Next(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("one logical step covers stride natural steps", func(t *testcase.T) {
		size := t.Random.IntB(1, 10)
		it := stride.Make[int](cursorkit.N(0), size)
		assert.Equal(t, size, it.Next().Base().Value())
	})

	s.Test("n logical steps cover n*stride natural steps", func(t *testcase.T) {
		var (
			size = t.Random.IntB(1, 10)
			n    = t.Random.IntB(1, 10)
			it   = stride.Make[int](cursorkit.N(0), size)
		)
		for range n {
			it = it.Next()
		}
		assert.Equal(t, n*size, it.Base().Value())
	})

	s.Test("a zero stride never moves the position", func(t *testcase.T) {
		at := t.Random.IntB(0, 100)
		it := stride.Make[int](cursorkit.N(at), 0)
		assert.Equal(t, cursorkit.N(at), it.Next().Base())
		assert.Equal(t, cursorkit.N(at), it.Next().Next().Base())
	})

	s.Test("a negative stride moves the position backward", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(100), -7)
		assert.Equal(t, cursorkit.N(93), it.Next().Base())
	})
}

func TestIterator_Prev(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("Prev undoes Next", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(t.Random.IntB(0, 100)), t.Random.IntB(1, 10))
		assert.True(t, it.Next().Prev().Equal(it))
		assert.True(t, it.Prev().Next().Equal(it))
	})

	s.Test("Prev moves the position back by the stride", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(50), 6)
		assert.Equal(t, cursorkit.N(44), it.Prev().Base())
	})

	s.Test("with a negative stride Prev moves the position forward", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(50), -6)
		assert.Equal(t, cursorkit.N(56), it.Prev().Base())
	})
}

func TestIterator_Advance(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("moves the position by n*stride natural steps in one jump", func(t *testcase.T) {
		var (
			size = t.Random.IntB(1, 10)
			n    = t.Random.IntB(-10, 10)
			it   = stride.Make[int](cursorkit.N(0), size)
		)
		assert.Equal(t, cursorkit.N(n*size), it.Advance(n).Base())
	})

	s.Test("Advance(n) equals n repeated logical steps", func(t *testcase.T) {
		var (
			size    = t.Random.IntB(1, 10)
			n       = t.Random.IntB(1, 10)
			it      = stride.Make[int](cursorkit.N(0), size)
			stepped = it
		)
		for range n {
			stepped = stepped.Next()
		}
		assert.True(t, it.Advance(n).Equal(stepped))
	})
}

func TestIterator_Distance(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("counts logical, not natural steps", func(t *testcase.T) {
		var (
			size = t.Random.IntB(1, 10)
			n    = t.Random.IntB(1, 42)
			bgn  = stride.Make[int](cursorkit.N(0), size)
			end  = stride.Make[int](cursorkit.N(0), size, n)
		)
		assert.Equal(t, n, bgn.Distance(end))
		assert.Equal(t, -n, end.Distance(bgn))
	})

	s.Test("negative stride distances count logical steps as well", func(t *testcase.T) {
		var (
			n   = t.Random.IntB(1, 42)
			bgn = stride.Make[int](cursorkit.N(100), -3)
			end = stride.Make[int](cursorkit.N(100), -3, n)
		)
		assert.Equal(t, n, bgn.Distance(end))
	})
}

func TestIterator_Equal(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("delegates to the wrapped positions", func(t *testcase.T) {
		at := t.Random.IntB(0, 100)
		a := stride.Make[int](cursorkit.N(at), 3)
		b := stride.Make[int](cursorkit.N(at), 3)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(b.Next()))
	})

	s.Test("strides take no part in equality", func(t *testcase.T) {
		at := t.Random.IntB(0, 100)
		a := stride.Make[int](cursorkit.N(at), 3)
		b := stride.Make[int](cursorkit.N(at), 7)
		assert.True(t, a.Equal(b))
	})
}

func TestIterator_Compare(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("orders by the wrapped positions", func(t *testcase.T) {
		it := stride.Make[int](cursorkit.N(t.Random.IntB(0, 100)), t.Random.IntB(1, 10))
		assert.Equal(t, 0, it.Compare(it))
		assert.Equal(t, -1, it.Compare(it.Next()))
		assert.Equal(t, 1, it.Next().Compare(it))
	})
}

func TestIterator_stacking(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("an Iterator is itself a random-access position and can be wrapped again", func(t *testcase.T) {
		// 2x2x3 column-major buffer; strides multiply when stacked,
		// so a stride-2 iterator wrapped with stride 2 moves 4 natural steps,
		// one step along the third dimension.
		buf := make([]int, 2*2*3)
		for i := range buf {
			buf[i] = i
		}
		dim2 := stride.Make[int](cursorkit.Begin(buf), 2)
		dim3 := stride.Make[int](dim2, 2)

		assert.Equal(t, 0, dim3.Value())
		assert.Equal(t, 4, dim3.Next().Value())
		assert.Equal(t, 8, dim3.Advance(2).Value())
		assert.Equal(t, 2, dim3.Distance(dim3.Advance(2)))
	})
}

// random returns a slice of n random ints.
func random(t *testcase.T, n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = t.Random.Int()
	}
	return vs
}
