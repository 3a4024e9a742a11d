package bitvec

import (
	"hash"

	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
)

// Box is an owned run of bits whose length is fixed at construction. It is
// the frozen form of a Vec.
type Box[O order.Order, T store.Element] struct {
	buf []T
	ptr BitPtr[T]
}

// BoxFromSlice copies the bits of s into a new Box.
func BoxFromSlice[O order.Order, T store.Element](s Slice[O, T]) *Box[O, T] {
	return FromSlice(s).IntoBox()
}

// Len returns the number of bits in the box.
func (b *Box[O, T]) Len() int {
	return int(b.ptr.Len())
}

// Bits borrows the bits as an exclusive view.
func (b *Box[O, T]) Bits() Slice[O, T] {
	return ViewOf[O](b.ptr)
}

// Clone returns a copy of the box.
func (b *Box[O, T]) Clone() *Box[O, T] {
	return BoxFromSlice(b.Bits())
}

// Hash writes the bits to h, see Slice.Hash.
func (b *Box[O, T]) Hash(h hash.Hash) {
	b.Bits().Hash(h)
}

// String renders the bits, see Slice.String.
func (b *Box[O, T]) String() string {
	return b.Bits().String()
}

// IntoVec turns the box back into a growable Vec without copying. b is
// left empty.
func (b *Box[O, T]) IntoVec(opts ...Option) *Vec[O, T] {
	v := New[O, T](opts...)
	v.buf, v.ptr = b.buf, b.ptr
	b.buf, b.ptr = nil, BitPtr[T]{}
	return v
}
