package bitvec

import (
	"iter"

	"github.com/astef/bitvec/access"
	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
)

// Slice is a borrowed, re-sliceable window over a run of bits. It owns
// nothing: the elements it points into belong to a Vec, a Box or a Go slice,
// and the view must not be used after that owner reallocates.
//
// Every element mutation goes through the view's access capability. Views
// handed out by Vec.Bits, View and ViewOf are exclusive. SplitAt, Chunks and
// Aliased return shared views, and so do Range, SubRange and Elements whenever
// the result only covers part of its first or last element. Shared views may
// be mutated from several goroutines at once as long as no two of them target
// the same bit.
//
// A view and the views derived from it are not independent: an exclusive
// parent must not be written while any of its sub-views is written from
// another goroutine.
type Slice[O order.Order, T store.Element] struct {
	ptr BitPtr[T]
	acc access.Accessor[T]
}

// View borrows every bit of elems.
func View[O order.Order, T store.Element](elems []T) Slice[O, T] {
	ptr, err := FromElems(elems, 0, uint(len(elems))*store.Width[T]())
	if err != nil {
		// a Go slice always satisfies the pointer invariants
		panic(err)
	}
	return Slice[O, T]{ptr: ptr, acc: access.Exclusive[T]{}}
}

// ViewOf borrows the region described by ptr.
func ViewOf[O order.Order, T store.Element](ptr BitPtr[T]) Slice[O, T] {
	return Slice[O, T]{ptr: ptr, acc: access.Exclusive[T]{}}
}

func (s Slice[O, T]) accessor() access.Accessor[T] {
	if s.acc == nil {
		return access.Exclusive[T]{}
	}
	return s.acc
}

func (s Slice[O, T]) with(ptr BitPtr[T]) Slice[O, T] {
	return Slice[O, T]{ptr: ptr, acc: s.acc}
}

// narrow returns the view of ptr, a region inside s. A region that only
// partly covers an edge element may share that element with a sibling view,
// so it gets shared access.
func (s Slice[O, T]) narrow(ptr BitPtr[T]) Slice[O, T] {
	w := store.Width[T]()
	if ptr.Head() != 0 || (ptr.Head()+ptr.Len())%w != 0 {
		return Slice[O, T]{ptr: ptr, acc: access.Shared[T]{}}
	}
	return s.with(ptr)
}

// Len returns the number of bits in the view.
func (s Slice[O, T]) Len() int {
	return int(s.ptr.Len())
}

// IsEmpty reports whether the view holds no bits.
func (s Slice[O, T]) IsEmpty() bool {
	return s.ptr.IsEmpty()
}

// Ptr returns the pointer describing the view.
func (s Slice[O, T]) Ptr() BitPtr[T] {
	return s.ptr
}

// Domain returns the head/body/tail split of the view.
func (s Slice[O, T]) Domain() Domain[T] {
	return s.ptr.Domain()
}

// IsAliased reports whether the view uses shared access.
func (s Slice[O, T]) IsAliased() bool {
	return s.accessor().Aliased()
}

// Aliased returns the same view with shared access. There is no way back to
// exclusive access from a shared view.
func (s Slice[O, T]) Aliased() Slice[O, T] {
	return Slice[O, T]{ptr: s.ptr, acc: access.Shared[T]{}}
}

func (s Slice[O, T]) get(index uint) bool {
	e, bit := s.ptr.locate(index)
	return s.accessor().Load(e)&order.Select[O, T](bit) != 0
}

func (s Slice[O, T]) set(index uint, value bool) {
	e, bit := s.ptr.locate(index)
	access.Write(s.accessor(), e, order.Select[O, T](bit), value)
}

// Get returns the bit at index.
func (s Slice[O, T]) Get(index int) (bool, error) {
	if err := checkIndex(index, s.Len()); err != nil {
		return false, err
	}
	return s.get(uint(index)), nil
}

// Set writes the bit at index.
func (s Slice[O, T]) Set(index int, value bool) error {
	if err := checkIndex(index, s.Len()); err != nil {
		return err
	}
	s.set(uint(index), value)
	return nil
}

// Toggle flips the bit at index.
func (s Slice[O, T]) Toggle(index int) error {
	if err := checkIndex(index, s.Len()); err != nil {
		return err
	}
	e, bit := s.ptr.locate(uint(index))
	s.accessor().Xor(e, order.Select[O, T](bit))
	return nil
}

// SubRange returns the view of the bits [offset, offset+length). The view
// uses shared access when it starts or ends inside an element.
func (s Slice[O, T]) SubRange(offset, length int) (Slice[O, T], error) {
	if err := checkRange(offset, offset+length, s.Len()); err != nil {
		return Slice[O, T]{}, err
	}
	ptr, err := s.ptr.SubRange(uint(offset), uint(length))
	if err != nil {
		return Slice[O, T]{}, err
	}
	return s.narrow(ptr), nil
}

// Range selects the half-open range [from, to).
func (s Slice[O, T]) Range(from, to int) (Slice[O, T], error) {
	if err := checkRange(from, to, s.Len()); err != nil {
		return Slice[O, T]{}, err
	}
	return s.SubRange(from, to-from)
}

// sub is Range without bounds checks. It keeps the access of s, for
// callers that own every element the result touches.
func (s Slice[O, T]) sub(from, to uint) Slice[O, T] {
	ptr, _ := s.ptr.SubRange(from, to-from)
	return s.with(ptr)
}

// SplitAt divides the view into [0, mid) and [mid, Len()). Both halves use
// shared access, since they may share the element holding bit mid.
func (s Slice[O, T]) SplitAt(mid int) (Slice[O, T], Slice[O, T], error) {
	if err := checkRange(mid, s.Len(), s.Len()); err != nil {
		return Slice[O, T]{}, Slice[O, T]{}, err
	}
	a := s.Aliased()
	return a.sub(0, uint(mid)), a.sub(uint(mid), a.ptr.Len()), nil
}

// Chunks yields consecutive views of size bits; the last one may be shorter.
// The chunks use shared access. Chunks panics if size is less than 1.
func (s Slice[O, T]) Chunks(size int) iter.Seq[Slice[O, T]] {
	if size < 1 {
		panic("bitvec: chunk size cannot be less than 1")
	}
	a := s.Aliased()
	return func(yield func(Slice[O, T]) bool) {
		n := a.ptr.Len()
		for from := uint(0); from < n; from += uint(size) {
			to := min(from+uint(size), n)
			if !yield(a.sub(from, to)) {
				return
			}
		}
	}
}

// ToVec copies the view into a new Vec.
func (s Slice[O, T]) ToVec(opts ...Option) *Vec[O, T] {
	return FromSlice(s, opts...)
}
