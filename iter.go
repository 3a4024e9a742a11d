package bitvec

import (
	"iter"

	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
)

// All yields the index and value of every bit, in order.
func (s Slice[O, T]) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := uint(0); i < s.ptr.Len(); i++ {
			if !yield(int(i), s.get(i)) {
				return
			}
		}
	}
}

// Values yields the value of every bit, in order.
func (s Slice[O, T]) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := uint(0); i < s.ptr.Len(); i++ {
			if !yield(s.get(i)) {
				return
			}
		}
	}
}

// Elements yields the view cut at storage element boundaries: one view per
// element touched, holding only the live bits of that element. Views of
// partly covered elements use shared access, see Slice.SubRange.
func (s Slice[O, T]) Elements() iter.Seq[Slice[O, T]] {
	return func(yield func(Slice[O, T]) bool) {
		w := store.Width[T]()
		n := s.ptr.Len()
		from := uint(0)
		for from < n {
			to := min(from+w-(s.ptr.Head()+from)%w, n)
			if !yield(s.narrow(s.sub(from, to).ptr)) {
				return
			}
			from = to
		}
	}
}

// Iter is a restartable cursor over the bits of a view.
type Iter[O order.Order, T store.Element] struct {
	s    Slice[O, T]
	next uint
}

// Iterator returns a cursor positioned before the first bit.
func (s Slice[O, T]) Iterator() *Iter[O, T] {
	return &Iter[O, T]{s: s}
}

// Next returns the next bit and its index. ok is false once the cursor has
// passed the last bit.
func (it *Iter[O, T]) Next() (ok bool, value bool, index int) {
	if it.next >= it.s.ptr.Len() {
		return false, false, 0
	}
	i := it.next
	it.next++
	return true, it.s.get(i), int(i)
}

// Remaining returns how many bits Next has yet to return.
func (it *Iter[O, T]) Remaining() int {
	return int(it.s.ptr.Len() - it.next)
}

// Reset moves the cursor back before the first bit.
func (it *Iter[O, T]) Reset() {
	it.next = 0
}
