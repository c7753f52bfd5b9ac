// Package algokit provides generic sequence algorithms over position pairs.
//
// Every function operates on a half-open [first, last) pair of positions and
// is written against a position capability set, not a concrete type, so the
// same algorithm runs on a plain cursor, a strided iterator, or any other
// type satisfying the category it asks for. The pair must be reachable:
// repeatedly stepping first must eventually produce a position equal to last,
// otherwise the traversal never terminates.
//
// Functions that need to name the element type list it as their first type
// parameter, since Go cannot infer it from a position's method set:
//
//	total := algokit.Sum[float64](begin, end)
//
// Functions whose element type appears in a function argument infer
// everything.
package algokit

import (
	"iter"

	"go.llib.dev/stride"
	"go.llib.dev/stride/internal/constraints"
)

// Number is the type set algokit arithmetic accepts.
type Number = constraints.Number

// ForEach applies fn to every element of [first, last) in order.
func ForEach[V any, P stride.Forward[P, V]](first, last P, fn func(V)) {
	for p := first; !p.Equal(last); p = p.Next() {
		fn(p.Value())
	}
}

// Reduce folds the elements of [first, last) into a single value,
// combining them with fn from an initial accumulator value.
func Reduce[R, V any, P stride.Forward[P, V]](first, last P, initial R, fn func(R, V) R) R {
	var acc = initial
	for p := first; !p.Equal(last); p = p.Next() {
		acc = fn(acc, p.Value())
	}
	return acc
}

// Sum adds up the elements of [first, last).
// An empty pair sums to the zero value.
func Sum[V Number, P stride.Forward[P, V]](first, last P) V {
	var total V
	for p := first; !p.Equal(last); p = p.Next() {
		total += p.Value()
	}
	return total
}

// Collect copies the elements of [first, last) into a new slice.
// An empty pair yields a nil slice.
func Collect[V any, P stride.Forward[P, V]](first, last P) []V {
	var vs []V
	for p := first; !p.Equal(last); p = p.Next() {
		vs = append(vs, p.Value())
	}
	return vs
}

// Count returns the number of positions in [first, last).
// It only asks for movement and equality, so it needs no element type.
func Count[P interface {
	Next() P
	Equal(P) bool
}](first, last P) int {
	var n int
	for p := first; !p.Equal(last); p = p.Next() {
		n++
	}
	return n
}

// Transform overwrites every element of [first, last) with fn applied to it.
// It requires positions that can write their element in place.
func Transform[V any, P interface {
	stride.Forward[P, V]
	stride.Mutable[P, V]
}](first, last P, fn func(V) V) {
	for p := first; !p.Equal(last); p = p.Next() {
		p.Set(fn(p.Value()))
	}
}

// Advance returns the position n single steps away from p,
// stepping backward when n is negative.
// Unlike the Advance method of random-access positions it walks step by
// step, so it works on any bidirectional position at linear cost.
func Advance[P interface {
	Next() P
	Prev() P
}](p P, n int) P {
	for ; 0 < n; n-- {
		p = p.Next()
	}
	for ; n < 0; n++ {
		p = p.Prev()
	}
	return p
}

// Values returns an iter.Seq over the elements of [first, last),
// bridging position pairs into the language iteration protocol.
func Values[V any, P stride.Forward[P, V]](first, last P) iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := first; !p.Equal(last); p = p.Next() {
			if !yield(p.Value()) {
				return
			}
		}
	}
}
