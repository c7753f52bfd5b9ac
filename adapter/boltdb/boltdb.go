// Package boltdb adapts a BoltDB bucket into a bidirectional position type,
// so strided traversal (stride.Walker) and position-pair algorithms can walk
// the keys of an embedded key-value store the same way they walk a slice.
//
// A bolt cursor is a single stateful object tied to its transaction; to keep
// the value semantics positions require, Cursor holds the bucket handle and
// its current key, and re-seeks on every movement. Moving a Cursor therefore
// costs a B+tree lookup rather than a pointer bump, which is also why the
// bucket position is bidirectional and not random-access.
//
// Every Cursor is only valid while the transaction it was created in stays
// open, same as the key and value byte slices bolt hands out.
package boltdb

import (
	"bytes"

	"github.com/boltdb/bolt"
)

// KV is the element a bucket position dereferences to:
// one key-value pair of the bucket.
type KV struct {
	Key   []byte
	Value []byte
}

// Cursor is a bidirectional position over the keys of a bucket,
// ordered the way the bucket orders them (byte-wise ascending).
type Cursor struct {
	bucket *bolt.Bucket
	kv     KV
	end    bool
}

// First returns the position of the smallest key of b,
// or the end sentinel when the bucket is empty.
func First(b *bolt.Bucket) Cursor {
	k, v := b.Cursor().First()
	if k == nil {
		return End(b)
	}
	return Cursor{bucket: b, kv: KV{Key: k, Value: v}}
}

// Last returns the position of the largest key of b,
// or the end sentinel when the bucket is empty.
func Last(b *bolt.Bucket) Cursor {
	k, v := b.Cursor().Last()
	if k == nil {
		return End(b)
	}
	return Cursor{bucket: b, kv: KV{Key: k, Value: v}}
}

// Seek returns the position of the first key at or after the given key,
// or the end sentinel when no such key exists.
func Seek(b *bolt.Bucket, key []byte) Cursor {
	k, v := b.Cursor().Seek(key)
	if k == nil {
		return End(b)
	}
	return Cursor{bucket: b, kv: KV{Key: k, Value: v}}
}

// End returns the position one past the largest key of b.
// It must not be dereferenced.
func End(b *bolt.Bucket) Cursor {
	return Cursor{bucket: b, end: true}
}

// Value returns the key-value pair the position points at.
// Dereferencing the end sentinel is a caller error.
func (c Cursor) Value() KV { return c.kv }

// Equal reports whether the two positions point at the same key of the same
// bucket. Comparing cursors of different buckets is a caller error.
func (c Cursor) Equal(oth Cursor) bool {
	if c.end || oth.end {
		return c.end == oth.end
	}
	return bytes.Equal(c.kv.Key, oth.kv.Key)
}

// Next returns the position of the next larger key,
// or the end sentinel after the largest key.
// The end sentinel stays in place when stepped forward, so strides that
// overshoot the last key terminate at the sentinel instead of wrapping.
func (c Cursor) Next() Cursor {
	if c.end {
		return c
	}
	cur := c.bucket.Cursor()
	cur.Seek(c.kv.Key)
	k, v := cur.Next()
	if k == nil {
		return End(c.bucket)
	}
	return Cursor{bucket: c.bucket, kv: KV{Key: k, Value: v}}
}

// Prev returns the position of the next smaller key; stepping backward from
// the end sentinel lands on the largest key. Stepping backward from the
// smallest key is a caller error with unspecified results.
func (c Cursor) Prev() Cursor {
	if c.end {
		return Last(c.bucket)
	}
	cur := c.bucket.Cursor()
	cur.Seek(c.kv.Key)
	k, v := cur.Prev()
	if k == nil {
		return Cursor{bucket: c.bucket}
	}
	return Cursor{bucket: c.bucket, kv: KV{Key: k, Value: v}}
}
