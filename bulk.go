package bitvec

import (
	"math/bits"

	"github.com/astef/bitvec/access"
	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
)

// edgeMask selects the live bits of a partial element.
func (s Slice[O, T]) edgeMask(p Partial[T]) T {
	return order.Mask[O, T](p.From, p.To)
}

// Fill writes value to every bit of the view.
func (s Slice[O, T]) Fill(value bool) {
	acc := s.accessor()
	d := s.ptr.Domain()
	if d.Head.Present() {
		access.Write(acc, d.Head.Elem, s.edgeMask(d.Head), value)
	}
	var fill T
	if value {
		fill = store.Ones[T]()
	}
	for i := range d.Body {
		d.Body[i] = fill
	}
	if d.Tail.Present() {
		access.Write(acc, d.Tail.Elem, s.edgeMask(d.Tail), value)
	}
}

// SetAll sets every bit of the view.
func (s Slice[O, T]) SetAll() { s.Fill(true) }

// ClearAll clears every bit of the view.
func (s Slice[O, T]) ClearAll() { s.Fill(false) }

// ToggleAll flips every bit of the view.
func (s Slice[O, T]) ToggleAll() {
	acc := s.accessor()
	d := s.ptr.Domain()
	if d.Head.Present() {
		acc.Xor(d.Head.Elem, s.edgeMask(d.Head))
	}
	for i := range d.Body {
		d.Body[i] = ^d.Body[i]
	}
	if d.Tail.Present() {
		acc.Xor(d.Tail.Elem, s.edgeMask(d.Tail))
	}
}

func onesCount[T store.Element](v T) int {
	return bits.OnesCount64(uint64(v))
}

// CountOnes returns the number of set bits.
func (s Slice[O, T]) CountOnes() int {
	acc := s.accessor()
	d := s.ptr.Domain()
	n := 0
	if d.Head.Present() {
		n += onesCount(acc.Load(d.Head.Elem) & s.edgeMask(d.Head))
	}
	for _, e := range d.Body {
		n += onesCount(e)
	}
	if d.Tail.Present() {
		n += onesCount(acc.Load(d.Tail.Elem) & s.edgeMask(d.Tail))
	}
	return n
}

// CountZeros returns the number of cleared bits.
func (s Slice[O, T]) CountZeros() int {
	return s.Len() - s.CountOnes()
}

// Any reports whether at least one bit is set.
func (s Slice[O, T]) Any() bool {
	acc := s.accessor()
	d := s.ptr.Domain()
	if d.Head.Present() && acc.Load(d.Head.Elem)&s.edgeMask(d.Head) != 0 {
		return true
	}
	for _, e := range d.Body {
		if e != 0 {
			return true
		}
	}
	return d.Tail.Present() && acc.Load(d.Tail.Elem)&s.edgeMask(d.Tail) != 0
}

// Every reports whether every bit is set. It is true for an empty view.
func (s Slice[O, T]) Every() bool {
	acc := s.accessor()
	d := s.ptr.Domain()
	if d.Head.Present() {
		if m := s.edgeMask(d.Head); acc.Load(d.Head.Elem)&m != m {
			return false
		}
	}
	for _, e := range d.Body {
		if e != store.Ones[T]() {
			return false
		}
	}
	if d.Tail.Present() {
		if m := s.edgeMask(d.Tail); acc.Load(d.Tail.Elem)&m != m {
			return false
		}
	}
	return true
}

// None reports whether no bit is set.
func (s Slice[O, T]) None() bool {
	return !s.Any()
}
