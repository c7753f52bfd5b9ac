// Package cursorkit provides ready-made position types over in-memory
// sequences, primarily for use with package stride.
//
// Cursors are value types over a shared backing sequence: copying a cursor
// copies only its coordinates, never the data, and moved copies are
// independent of each other. None of the cursors validate their coordinates;
// a cursor pointing outside its sequence behaves like an out-of-range index,
// and what happens on dereference is up to the runtime.
package cursorkit

import (
	"cmp"

	"go.llib.dev/stride"
)

// Slice is a random-access position over a []V.
// All positions of the same traversal must share the same backing slice;
// comparing or measuring cursors of different slices is a caller error with
// unspecified results, the same way comparing indices of unrelated arrays is.
//
// Slice also supports in-place element writes through Set,
// which go to the shared backing array.
type Slice[V any] struct {
	data  []V
	index int
}

// Begin returns the position of the first element of s.
func Begin[V any](s []V) Slice[V] {
	return Slice[V]{data: s}
}

// End returns the position one past the last element of s.
// It must not be dereferenced.
func End[V any](s []V) Slice[V] {
	return Slice[V]{data: s, index: len(s)}
}

// At returns the position of s[i].
func At[V any](s []V, i int) Slice[V] {
	return Slice[V]{data: s, index: i}
}

// Index returns the cursor's offset from the start of its backing slice.
func (c Slice[V]) Index() int { return c.index }

// Value returns the element the cursor points at.
func (c Slice[V]) Value() V { return c.data[c.index] }

// Set overwrites the element the cursor points at in the backing slice.
func (c Slice[V]) Set(v V) { c.data[c.index] = v }

// Equal reports whether the two cursors point at the same offset.
func (c Slice[V]) Equal(oth Slice[V]) bool { return c.index == oth.index }

// Next returns the cursor one element forward.
func (c Slice[V]) Next() Slice[V] { return Slice[V]{data: c.data, index: c.index + 1} }

// Prev returns the cursor one element backward.
func (c Slice[V]) Prev() Slice[V] { return Slice[V]{data: c.data, index: c.index - 1} }

// Advance returns the cursor n elements away; negative n moves backward.
func (c Slice[V]) Advance(n int) Slice[V] { return Slice[V]{data: c.data, index: c.index + n} }

// Distance returns how many elements forward the receiver is from oth.
func (c Slice[V]) Distance(oth Slice[V]) int { return oth.index - c.index }

// Compare orders the two cursors by offset.
func (c Slice[V]) Compare(oth Slice[V]) int { return cmp.Compare(c.index, oth.index) }

// Strided returns a strided iterator over s, saving the caller from spelling
// the type arguments stride.Make would need:
//
//	col := cursorkit.Strided(matrix, nr)
//
// The optional strides count pre-offsets the position the way stride.Make
// does.
func Strided[V any](s []V, size int, strides ...int) stride.Iterator[V, Slice[V]] {
	return stride.Make[V](Begin(s), size, strides...)
}

// StridedRange returns the stride.Range spanning strides logical steps of
// the given stride size from the start of s.
func StridedRange[V any](s []V, size, strides int) stride.Range[V, Slice[V]] {
	return stride.MakeRange[V](Begin(s), size, strides)
}

// Index is a random-access position over the integers themselves:
// dereferencing yields the current index value. It needs no backing storage,
// which makes it the cheapest way to drive positional algorithms by number,
// or to exercise stride arithmetic in tests.
type Index int

// N returns the integer position at i.
func N(i int) Index { return Index(i) }

// Value returns the index itself.
func (n Index) Value() int { return int(n) }

// Equal reports whether the two positions hold the same index.
func (n Index) Equal(oth Index) bool { return n == oth }

// Next returns the position at the next integer.
func (n Index) Next() Index { return n + 1 }

// Prev returns the position at the previous integer.
func (n Index) Prev() Index { return n - 1 }

// Advance returns the position i integers away.
func (n Index) Advance(i int) Index { return n + Index(i) }

// Distance returns oth minus the receiver.
func (n Index) Distance(oth Index) int { return int(oth - n) }

// Compare orders the two positions numerically.
func (n Index) Compare(oth Index) int { return cmp.Compare(n, oth) }
