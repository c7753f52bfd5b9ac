// Package stride provides strided traversal over positional sequences.
//
// # Summary
//
// A position is a value that points into a sequence: a slice index, a B+tree
// cursor, anything that can be dereferenced and moved. Package stride wraps
// such a position and changes only how far one logical step moves it:
// a strided iterator with stride `s` advances its wrapped position by `s`
// natural steps per increment. Everything else — dereference, equality,
// ordering — is forwarded to the wrapped position unchanged.
//
// This makes it possible to hand one dimension of a flat column-major or
// row-major buffer (a matrix, a tensor, an interleaved record layout) to a
// generic sequence algorithm without the algorithm, or the caller, computing
// offsets by hand. An algorithm written against a position category accepts a
// strided position wherever it accepts the wrapped position type itself; the
// only observable difference is the skip distance per logical step.
//
// # Preconditions instead of validation
//
// The package performs no bounds checking and has no failure paths.
// Constructing a position outside the valid range of the underlying sequence,
// computing the distance between iterators of unequal strides, or looping a
// zero-stride iterator against an offset end sentinel are all caller mistakes
// with unspecified results, exactly as they are with raw index arithmetic.
// Adding runtime checks would change the cost model the package exists to
// preserve; preconditions are documented on each operation instead.
package stride

// Position is the minimal capability set of a position type:
// it can be dereferenced and compared for equality.
//
// P is the implementing position type itself, V is the element type the
// position points at. Positions are value types; they are copied freely and
// copies move independently of each other.
type Position[P, V any] interface {
	// Value dereferences the position,
	// returning the element it currently points at.
	//
	// Dereferencing a position that points outside its sequence
	// is a caller error with unspecified results.
	Value() V
	// Equal reports whether the two positions point at the same place.
	Equal(oth P) bool
}

// Forward is a position that can take single natural steps towards the end
// of its sequence.
type Forward[P, V any] interface {
	Position[P, V]
	// Next returns the position one natural step forward.
	Next() P
}

// Bidirectional is a position that can take single natural steps
// in both directions.
type Bidirectional[P, V any] interface {
	Forward[P, V]
	// Prev returns the position one natural step backward.
	Prev() P
}

// RandomAccess is a position that can jump an arbitrary signed number of
// natural steps in constant time, measure how many steps separate it from
// another position, and order itself against another position.
type RandomAccess[P, V any] interface {
	Bidirectional[P, V]
	// Advance returns the position n natural steps away.
	// Negative n moves backward.
	Advance(n int) P
	// Distance returns how many natural steps forward the receiver must take
	// to reach oth. The result is negative when oth is behind the receiver.
	//
	// Both positions must belong to the same sequence.
	Distance(oth P) int
	// Compare orders the receiver against oth along the sequence:
	//   -1 when the receiver is before oth,
	//    0 when they are equal, and
	//   +1 when the receiver is after oth.
	Compare(oth P) int
}

// Mutable is a position whose pointed-at element can be overwritten in place.
// It is an optional capability; in-place algorithms such as algokit.Transform
// require it, everything else works on read-only positions.
type Mutable[P, V any] interface {
	Position[P, V]
	// Set overwrites the element the position currently points at.
	Set(v V)
}
