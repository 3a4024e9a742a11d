package bitvec

import (
	"cmp"
	"encoding/binary"
	"hash"
	"iter"
	"slices"

	"github.com/astef/bitvec/access"
	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
	"github.com/cockroachdb/errors"
)

// run is a stretch of n bits lying inside a single element of each of two
// regions, starting at in-element index ai of *a and bi of *b.
type run[T store.Element] struct {
	a, b   *T
	ai, bi uint
	n      uint
}

// forwardRuns cuts the first count bits of a and b into runs, first to last.
func forwardRuns[T store.Element](a, b BitPtr[T], count uint) iter.Seq[run[T]] {
	return func(yield func(run[T]) bool) {
		w := store.Width[T]()
		ab, bb := a.Head(), b.Head()
		for done := uint(0); done < count; {
			ai, bi := ab%w, bb%w
			n := min(count-done, w-ai, w-bi)
			if !yield(run[T]{a: a.elem(int(ab / w)), b: b.elem(int(bb / w)), ai: ai, bi: bi, n: n}) {
				return
			}
			ab += n
			bb += n
			done += n
		}
	}
}

// backwardRuns cuts the first count bits of a and b into runs, last to first.
func backwardRuns[T store.Element](a, b BitPtr[T], count uint) iter.Seq[run[T]] {
	return func(yield func(run[T]) bool) {
		w := store.Width[T]()
		ae, be := a.Head()+count, b.Head()+count
		for left := count; left > 0; {
			n := min(left, (ae-1)%w+1, (be-1)%w+1)
			ae -= n
			be -= n
			left -= n
			if !yield(run[T]{a: a.elem(int(ae / w)), b: b.elem(int(be / w)), ai: ae % w, bi: be % w, n: n}) {
				return
			}
		}
	}
}

// readRun loads the logical indices [from, from+n) of *e packed into the low
// n bits of the result. The packing is only meaningful to writeRun of the
// same order.
func readRun[O order.Order, T store.Element](acc access.Accessor[T], e *T, from, n uint) T {
	w := store.Width[T]()
	v := acc.Load(e)
	if at, ok := order.Span[O](w, from, n); ok {
		return (v >> at) & store.MaskRange[T](0, n)
	}
	var (
		o   O
		out T
	)
	for k := uint(0); k < n; k++ {
		if store.Test(v, o.Position(w, from+k)) {
			out |= store.Bit[T](k)
		}
	}
	return out
}

// writeRun stores a value produced by readRun into the logical indices
// [from, from+n) of *e.
func writeRun[O order.Order, T store.Element](acc access.Accessor[T], e *T, from, n uint, v T) {
	w := store.Width[T]()
	if at, ok := order.Span[O](w, from, n); ok {
		acc.StoreMasked(e, store.MaskRange[T](0, n)<<at, v<<at)
		return
	}
	var (
		o           O
		mask, value T
	)
	for k := uint(0); k < n; k++ {
		bit := store.Bit[T](o.Position(w, from+k))
		mask |= bit
		if store.Test(v, k) {
			value |= bit
		}
	}
	acc.StoreMasked(e, mask, value)
}

// linear returns the position of the first bit of p in a single bit-address
// space shared by every region of element type T.
func linear[T store.Element](p BitPtr[T]) uint64 {
	return uint64(uintptr(p.base())/store.Size[T]())*uint64(store.Width[T]()) + uint64(p.Head())
}

// Copy copies bits from src into dst and returns the number of bits copied,
// which is the minimum of src.Len() and dst.Len(). The views may overlap.
func Copy[O order.Order, T store.Element](dst, src Slice[O, T]) int {
	n := min(dst.ptr.Len(), src.ptr.Len())
	if n == 0 {
		return 0
	}
	dst = dst.with(dst.ptr.withLen(n))
	src = src.with(src.ptr.withLen(n))
	backward := linear(dst.ptr) > linear(src.ptr)

	if dst.ptr.Head() == src.ptr.Head() {
		copyAligned(dst, src, backward)
		return int(n)
	}

	dacc, sacc := dst.accessor(), src.accessor()
	runs := forwardRuns(dst.ptr, src.ptr, n)
	if backward {
		runs = backwardRuns(dst.ptr, src.ptr, n)
	}
	for r := range runs {
		writeRun[O](dacc, r.a, r.ai, r.n, readRun[O](sacc, r.b, r.bi, r.n))
	}
	return int(n)
}

// copyAligned copies between equally long views with the same head: whole
// body elements are moved at once, only the edges are masked.
func copyAligned[O order.Order, T store.Element](dst, src Slice[O, T], backward bool) {
	dd, sd := dst.ptr.Domain(), src.ptr.Domain()
	dacc, sacc := dst.accessor(), src.accessor()
	head := func() {
		if dd.Head.Present() {
			dacc.StoreMasked(dd.Head.Elem, dst.edgeMask(dd.Head), sacc.Load(sd.Head.Elem))
		}
	}
	tail := func() {
		if dd.Tail.Present() {
			dacc.StoreMasked(dd.Tail.Elem, dst.edgeMask(dd.Tail), sacc.Load(sd.Tail.Elem))
		}
	}
	if backward {
		tail()
		copy(dd.Body, sd.Body)
		head()
		return
	}
	head()
	copy(dd.Body, sd.Body)
	tail()
}

// CopyFrom copies every bit of src into s. Both views must have the same
// length.
func (s Slice[O, T]) CopyFrom(src Slice[O, T]) error {
	if s.Len() != src.Len() {
		return errors.Wrapf(ErrOutOfBounds, "copy of %d bits into %d bits", src.Len(), s.Len())
	}
	Copy(s, src)
	return nil
}

// Equal reports whether both views hold the same bit sequence.
func (s Slice[O, T]) Equal(other Slice[O, T]) bool {
	n := s.ptr.Len()
	if n != other.ptr.Len() {
		return false
	}
	if n == 0 {
		return true
	}
	aacc, bacc := s.accessor(), other.accessor()
	if s.ptr.Head() == other.ptr.Head() {
		ad, bd := s.ptr.Domain(), other.ptr.Domain()
		if ad.Head.Present() {
			m := s.edgeMask(ad.Head)
			if aacc.Load(ad.Head.Elem)&m != bacc.Load(bd.Head.Elem)&m {
				return false
			}
		}
		if ad.Tail.Present() {
			m := s.edgeMask(ad.Tail)
			if aacc.Load(ad.Tail.Elem)&m != bacc.Load(bd.Tail.Elem)&m {
				return false
			}
		}
		return slices.Equal(ad.Body, bd.Body)
	}
	for r := range forwardRuns(s.ptr, other.ptr, n) {
		if readRun[O](aacc, r.a, r.ai, r.n) != readRun[O](bacc, r.b, r.bi, r.n) {
			return false
		}
	}
	return true
}

// Compare orders views lexicographically by their bits, a cleared bit before
// a set one, and a view before any longer view it is a prefix of. The result
// is -1, 0 or +1.
func (s Slice[O, T]) Compare(other Slice[O, T]) int {
	n := min(s.ptr.Len(), other.ptr.Len())
	aacc, bacc := s.accessor(), other.accessor()
	for r := range forwardRuns(s.ptr, other.ptr, n) {
		if readRun[O](aacc, r.a, r.ai, r.n) == readRun[O](bacc, r.b, r.bi, r.n) {
			continue
		}
		for k := uint(0); k < r.n; k++ {
			x := aacc.Load(r.a)&order.Select[O, T](r.ai+k) != 0
			y := bacc.Load(r.b)&order.Select[O, T](r.bi+k) != 0
			if x != y {
				if x {
					return 1
				}
				return -1
			}
		}
	}
	return cmp.Compare(s.ptr.Len(), other.ptr.Len())
}

// Hash writes the length of the view and then its bits, packed eight to a
// byte with bit 0 in the least significant position, to h. Views that are
// Equal write the same bytes whatever their head.
func (s Slice[O, T]) Hash(h hash.Hash) {
	var buf [64]byte
	n := s.ptr.Len()
	binary.LittleEndian.PutUint64(buf[:8], uint64(n))
	h.Write(buf[:8])
	clear(buf[:8])

	k := 0
	for i := uint(0); i < n; i++ {
		if s.get(i) {
			buf[k/8] |= 1 << (k % 8)
		}
		if k++; k == len(buf)*8 {
			h.Write(buf[:])
			clear(buf[:])
			k = 0
		}
	}
	if k > 0 {
		h.Write(buf[:(k+7)/8])
	}
}
