// Package convert moves bits between bit vectors and the set-of-indices
// representations of roaring bitmaps and bitsets.
//
// Bit i of a vector corresponds to member i of the set.
package convert

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/astef/bitvec"
	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

var (
	// ErrTooLong is returned when a view has more bits than the target can index.
	ErrTooLong = errors.New("too many bits for target")
	// ErrMemberOutOfRange is returned when a set holds a member at or past the
	// requested vector length.
	ErrMemberOutOfRange = errors.New("set member out of range")
)

// ToRoaring returns a bitmap holding the index of every set bit of s.
// Roaring bitmaps index with uint32, so s may hold at most 1<<32 bits.
func ToRoaring[O order.Order, T store.Element](s bitvec.Slice[O, T]) (*roaring.Bitmap, error) {
	if uint64(s.Len()) > math.MaxUint32+1 {
		return nil, errors.Wrapf(ErrTooLong, "%d bits for a 32-bit bitmap", s.Len())
	}
	rb := roaring.New()
	for i, v := range s.All() {
		if v {
			rb.Add(uint32(i))
		}
	}
	rb.RunOptimize()
	return rb, nil
}

// FromRoaring returns a vector of n bits with exactly the members of rb set.
func FromRoaring[O order.Order, T store.Element](rb *roaring.Bitmap, n int, opts ...bitvec.Option) (*bitvec.Vec[O, T], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrMemberOutOfRange, "negative length %d", n)
	}
	if !rb.IsEmpty() && uint64(rb.Maximum()) >= uint64(n) {
		return nil, errors.Wrapf(ErrMemberOutOfRange, "member %d with length %d", rb.Maximum(), n)
	}
	v := bitvec.Repeat[O, T](false, n, opts...)
	bits := v.Bits()
	it := rb.Iterator()
	for it.HasNext() {
		if err := bits.Set(int(it.Next()), true); err != nil {
			return nil, errors.Wrap(err, "roaring member")
		}
	}
	return v, nil
}

// ToBitSet returns a bitset of length s.Len() holding the set bits of s.
func ToBitSet[O order.Order, T store.Element](s bitvec.Slice[O, T]) *bitset.BitSet {
	b := bitset.New(uint(s.Len()))
	for i, v := range s.All() {
		if v {
			b.Set(uint(i))
		}
	}
	return b
}

// FromBitSet returns a vector of b.Len() bits with the members of b set.
func FromBitSet[O order.Order, T store.Element](b *bitset.BitSet, opts ...bitvec.Option) (*bitvec.Vec[O, T], error) {
	if b.Len() > uint(bitvec.MaxBits) {
		return nil, errors.Wrapf(ErrTooLong, "bitset of %d bits", b.Len())
	}
	v := bitvec.Repeat[O, T](false, int(b.Len()), opts...)
	bits := v.Bits()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if err := bits.Set(int(i), true); err != nil {
			return nil, errors.Wrap(err, "bitset member")
		}
	}
	return v, nil
}
