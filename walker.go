package stride

// Walker is the strided adaptor for positions that only support single
// natural steps. One logical step of a Walker takes |stride| natural steps on
// the wrapped position, towards the end of the sequence for a positive
// stride and towards its start for a negative one.
//
// A Walker is a Bidirectional position itself, so it composes with anything
// written against that category; what it cannot offer is the constant-time
// Advance/Distance of Iterator, because the wrapped position cannot either.
type Walker[V any, P Bidirectional[P, V]] struct {
	base   P
	stride int
}

// MakeWalker wraps base into a strided Walker.
//
// The optional strides count pre-walks base by strides*stride natural steps,
// one step at a time, before wrapping; at most one count is read. Use it to
// build an end sentinel from the same origin as the begin walker. Every
// intermediate position must be valid to step from, since the walk is taken
// step by step.
func MakeWalker[V any, P Bidirectional[P, V]](base P, stride int, strides ...int) Walker[V, P] {
	if 0 < len(strides) {
		base = step[V](base, strides[0]*stride)
	}
	return Walker[V, P]{base: base, stride: stride}
}

// step takes n single natural steps on p, backward when n is negative.
func step[V any, P Bidirectional[P, V]](p P, n int) P {
	for ; 0 < n; n-- {
		p = p.Next()
	}
	for ; n < 0; n++ {
		p = p.Prev()
	}
	return p
}

// Base returns the wrapped position.
func (w Walker[V, P]) Base() P { return w.base }

// Stride returns the signed natural-step count of one logical step.
func (w Walker[V, P]) Stride() int { return w.stride }

// Value dereferences the wrapped position.
func (w Walker[V, P]) Value() V { return w.base.Value() }

// Equal reports whether the wrapped positions are equal,
// regardless of the walkers' strides.
func (w Walker[V, P]) Equal(oth Walker[V, P]) bool {
	return w.base.Equal(oth.base)
}

// Next returns the walker one logical step forward,
// taking |stride| single natural steps on the wrapped position.
func (w Walker[V, P]) Next() Walker[V, P] {
	return Walker[V, P]{base: step[V](w.base, w.stride), stride: w.stride}
}

// Prev returns the walker one logical step backward.
func (w Walker[V, P]) Prev() Walker[V, P] {
	return Walker[V, P]{base: step[V](w.base, -w.stride), stride: w.stride}
}
