package stride

import "iter"

// Range is a begin/end pair of strided Iterators over the same sequence.
// It owns nothing beyond its two endpoints and never allocates; it exists so
// that callers can say "n logical steps of size s from here" once instead of
// deriving the end sentinel by hand.
type Range[V any, P RandomAccess[P, V]] struct {
	first Iterator[V, P]
	last  Iterator[V, P]
}

// MakeRange builds the Range spanning strides logical steps of size stride
// from base. Begin is Make(base, stride) and End is Make(base, stride,
// strides); End is therefore reachable from Begin by exactly strides
// increments, provided the underlying sequence has that many positions.
//
// A negative strides count, or a stride sign pointing away from the sentinel,
// produces a pair End can never reach by forward increments; avoiding that
// combination is the caller's responsibility.
func MakeRange[V any, P RandomAccess[P, V]](base P, stride, strides int) Range[V, P] {
	return Range[V, P]{
		first: Make[V](base, stride),
		last:  Make[V](base, stride, strides),
	}
}

// Begin returns the first iterator of the range.
func (r Range[V, P]) Begin() Iterator[V, P] { return r.first }

// End returns the range's end sentinel.
// Like any end sentinel, it points past the last element and
// must not be dereferenced.
func (r Range[V, P]) End() Iterator[V, P] { return r.last }

// Len returns the number of logical steps between Begin and End.
// It is derived through Distance, so it shares Distance's non-zero stride
// precondition.
func (r Range[V, P]) Len() int { return r.first.Distance(r.last) }

// Values returns an iter.Seq that yields the element at each logical step of
// the range, so a Range can be consumed by a for-range loop or by anything
// that accepts a value sequence.
func (r Range[V, P]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := r.first; !it.Equal(r.last); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// All returns an iter.Seq2 of logical step index and element value.
func (r Range[V, P]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		var n int
		for it := r.first; !it.Equal(r.last); it = it.Next() {
			if !yield(n, it.Value()) {
				return
			}
			n++
		}
	}
}

// Positions returns an iter.Seq over the iterators of each logical step,
// for consumers that need the position itself rather than its element,
// such as stacking a further strided dimension on top of each one.
func (r Range[V, P]) Positions() iter.Seq[Iterator[V, P]] {
	return func(yield func(Iterator[V, P]) bool) {
		for it := r.first; !it.Equal(r.last); it = it.Next() {
			if !yield(it) {
				return
			}
		}
	}
}
