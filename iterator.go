package stride

// Iterator adapts a random-access position so that one logical step moves it
// by a fixed signed number of natural steps. It satisfies
// RandomAccess[Iterator[V, P], V] itself, so strided iterators can be handed
// to anything that consumes random-access positions, including another layer
// of Make for traversing a further dimension.
//
// The element type parameter comes first because it is the one callers have
// to spell out: Go cannot infer it from the position's method set, while the
// position type is always inferred from the argument.
//
// The zero value is an Iterator over P's zero position with a zero stride.
type Iterator[V any, P RandomAccess[P, V]] struct {
	base   P
	stride int
}

// Make wraps base into a strided Iterator:
//
//	it := stride.Make[float64](cursorkit.Begin(buf), nr)
//
// The stride is the signed number of natural steps one logical step covers.
// It is fixed for the lifetime of the returned Iterator. A zero stride yields
// an iterator that never moves; that is legal, but looping such an iterator
// against an end sentinel built with a non-zero offset never terminates.
//
// The optional strides count pre-advances base by strides*stride natural
// steps before wrapping, which is how an end sentinel is built from the same
// origin as the begin iterator:
//
//	begin := stride.Make[float64](p, s)
//	end := stride.Make[float64](p, s, n)
//
// At most one strides count is read; further values are ignored. Nothing
// validates that the pre-advanced position is still inside the underlying
// sequence.
func Make[V any, P RandomAccess[P, V]](base P, stride int, strides ...int) Iterator[V, P] {
	if 0 < len(strides) {
		base = base.Advance(strides[0] * stride)
	}
	return Iterator[V, P]{base: base, stride: stride}
}

// Base returns the wrapped position.
func (i Iterator[V, P]) Base() P { return i.base }

// Stride returns the signed natural-step count of one logical step.
func (i Iterator[V, P]) Stride() int { return i.stride }

// Value dereferences the wrapped position.
func (i Iterator[V, P]) Value() V { return i.base.Value() }

// Equal reports whether the wrapped positions are equal.
// The strides of the two iterators take no part in the comparison;
// iterators of different strides compare equal whenever their positions meet.
func (i Iterator[V, P]) Equal(oth Iterator[V, P]) bool {
	return i.base.Equal(oth.base)
}

// Next returns the iterator one logical step forward,
// its position advanced by the stride.
func (i Iterator[V, P]) Next() Iterator[V, P] {
	return Iterator[V, P]{base: i.base.Advance(i.stride), stride: i.stride}
}

// Prev returns the iterator one logical step backward,
// its position moved back by the stride.
func (i Iterator[V, P]) Prev() Iterator[V, P] {
	return Iterator[V, P]{base: i.base.Advance(-i.stride), stride: i.stride}
}

// Advance returns the iterator n logical steps away, moving the wrapped
// position by n*stride natural steps in a single jump. It costs whatever a
// single Advance on the wrapped position costs.
func (i Iterator[V, P]) Advance(n int) Iterator[V, P] {
	return Iterator[V, P]{base: i.base.Advance(n * i.stride), stride: i.stride}
}

// Distance returns the number of logical steps from the receiver to oth.
//
// Both iterators must have been built with the same non-zero stride over the
// same sequence; with mismatched or zero strides the result is unspecified.
func (i Iterator[V, P]) Distance(oth Iterator[V, P]) int {
	return i.base.Distance(oth.base) / i.stride
}

// Compare orders the two iterators by their wrapped positions.
func (i Iterator[V, P]) Compare(oth Iterator[V, P]) int {
	return i.base.Compare(oth.base)
}
