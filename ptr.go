package bitvec

import (
	"fmt"
	"unsafe"

	"github.com/astef/bitvec/store"
	"github.com/cockroachdb/errors"
)

const (
	// number of head bits kept in the length word; the rest of the head
	// lives in the low, always-zero address bits of the element pointer.
	headLowBits = 3
	headLowMask = 1<<headLowBits - 1

	// MaxBits is the largest number of bits a BitPtr can describe.
	MaxBits = int(^uint(0) >> headLowBits)
)

// BitPtr describes a run of bits: the storage element holding the first
// bit, the in-element offset of that bit (head) and the number of bits.
//
// It occupies two machine words. The head is split between the low bits of
// the address, which are free because elements are size-aligned, and the low
// bits of the length word:
//
//	ptr  = &element + head>>3 bytes
//	meta = len<<3 | head&7
//
// The address never leaves the first element, so it always points into the
// allocation the region belongs to. The zero value is the empty region.
type BitPtr[T store.Element] struct {
	ptr  unsafe.Pointer
	meta uint
}

// NewBitPtr validates and encodes a region of length bits starting at bit
// head of *base. The caller guarantees that the elements spanned by the region
// belong to a single allocation; FromElems checks this for Go slices.
func NewBitPtr[T store.Element](base *T, head, length uint) (BitPtr[T], error) {
	w := store.Width[T]()
	size := store.Size[T]()
	if base == nil {
		return BitPtr[T]{}, errors.Wrap(ErrInvalidPointer, "nil base")
	}
	addr := uintptr(unsafe.Pointer(base))
	if addr%size != 0 {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "base %#x is not aligned to %d bytes", addr, size)
	}
	if head >= w {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "head %d with element width %d", head, w)
	}
	if length > uint(MaxBits) {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "length %d exceeds %d", length, MaxBits)
	}
	span := uintptr(elementsFor(head, length, w)) * size
	if span > ^uintptr(0)-addr {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "%d bytes at %#x overflow the address space", span, addr)
	}
	return encode[T](unsafe.Pointer(base), head, length), nil
}

// FromElems returns the region of length bits starting at bit head of
// elems[0]. The region must fit in elems.
func FromElems[T store.Element](elems []T, head, length uint) (BitPtr[T], error) {
	w := store.Width[T]()
	if head >= w {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "head %d with element width %d", head, w)
	}
	if length > uint(MaxBits) {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "length %d exceeds %d", length, MaxBits)
	}
	if need := elementsFor(head, length, w); need > uint(len(elems)) {
		return BitPtr[T]{}, errors.Wrapf(ErrInvalidPointer, "%d bits at head %d need %d elements, have %d", length, head, need, len(elems))
	}
	if len(elems) == 0 {
		return BitPtr[T]{}, nil
	}
	return NewBitPtr(&elems[0], head, length)
}

func encode[T store.Element](base unsafe.Pointer, head, length uint) BitPtr[T] {
	return BitPtr[T]{
		ptr:  unsafe.Add(base, head>>headLowBits),
		meta: length<<headLowBits | head&headLowMask,
	}
}

// elementsFor returns how many elements a region of length bits at head
// touches.
func elementsFor(head, length, w uint) uint {
	if length == 0 {
		return 0
	}
	return (head + length + w - 1) / w
}

func (p BitPtr[T]) addrBits() uintptr {
	return uintptr(p.ptr) & (store.Size[T]() - 1)
}

func (p BitPtr[T]) base() unsafe.Pointer {
	if p.ptr == nil {
		return nil
	}
	return unsafe.Add(p.ptr, -int(p.addrBits()))
}

// Base returns the element holding the first bit, or nil for the zero value.
func (p BitPtr[T]) Base() *T {
	return (*T)(p.base())
}

// Head returns the in-element offset of the first bit.
func (p BitPtr[T]) Head() uint {
	return uint(p.addrBits())<<headLowBits | p.meta&headLowMask
}

// Len returns the number of bits in the region.
func (p BitPtr[T]) Len() uint {
	return p.meta >> headLowBits
}

// IsEmpty reports whether the region holds no bits.
func (p BitPtr[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Elements returns the number of storage elements the region touches.
func (p BitPtr[T]) Elements() int {
	return int(elementsFor(p.Head(), p.Len(), store.Width[T]()))
}

// elem returns the i-th element of the region. i must be below Elements().
func (p BitPtr[T]) elem(i int) *T {
	return (*T)(unsafe.Add(p.base(), uintptr(i)*store.Size[T]()))
}

// elems returns the elements the region touches.
func (p BitPtr[T]) elems() []T {
	n := p.Elements()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p.Base(), n)
}

// locate returns the element and in-element index of the bit at index.
func (p BitPtr[T]) locate(index uint) (*T, uint) {
	w := store.Width[T]()
	bit := p.Head() + index
	return p.elem(int(bit / w)), bit % w
}

// SubRange returns the region [offset, offset+length) of p. The carry of
// head+offset past the element width moves the base forward.
func (p BitPtr[T]) SubRange(offset, length uint) (BitPtr[T], error) {
	n := p.Len()
	if offset > n || length > n-offset {
		return BitPtr[T]{}, errors.Wrapf(ErrOutOfBounds, "range [%d:+%d] with length %d", offset, length, n)
	}
	if length == 0 {
		return BitPtr[T]{}, nil
	}
	w := store.Width[T]()
	bit := p.Head() + offset
	base := unsafe.Add(p.base(), uintptr(bit/w)*store.Size[T]())
	return encode[T](base, bit%w, length), nil
}

// withLen returns p resized to length bits. The caller guarantees that
// the elements touched belong to the same allocation.
func (p BitPtr[T]) withLen(length uint) BitPtr[T] {
	p.meta = length<<headLowBits | p.meta&headLowMask
	return p
}

// setHead rewrites the head in place. The caller guarantees h is below the
// element width and that the region still fits its allocation.
func (p *BitPtr[T]) setHead(h uint) {
	base := p.base()
	p.ptr = unsafe.Add(base, h>>headLowBits)
	p.meta = p.meta&^headLowMask | h&headLowMask
}

// String renders the decoded fields.
func (p BitPtr[T]) String() string {
	return fmt.Sprintf("BitPtr<%s>{base: %p, head: %d, len: %d}", store.Name[T](), p.base(), p.Head(), p.Len())
}
