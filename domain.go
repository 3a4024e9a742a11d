package bitvec

import (
	"github.com/astef/bitvec/store"
)

// Partial is a storage element of which only the in-element indices
// [From, To) belong to a region.
type Partial[T store.Element] struct {
	Elem     *T
	From, To uint
}

// Present reports whether the partial element exists.
func (p Partial[T]) Present() bool {
	return p.Elem != nil
}

// Bits returns the number of live bits in the partial element.
func (p Partial[T]) Bits() uint {
	return p.To - p.From
}

// Domain splits a region into a partial head element, whole body elements
// and a partial tail element, so bulk operations can work a full element at
// a time and only mask at the two edges.
//
// A region lying strictly inside one element has only a Head.
type Domain[T store.Element] struct {
	Head Partial[T]
	Body []T
	Tail Partial[T]
}

// Domain returns the head/body/tail split of the region.
func (p BitPtr[T]) Domain() Domain[T] {
	var d Domain[T]
	n := p.Elements()
	if n == 0 {
		return d
	}
	w := store.Width[T]()
	head := p.Head()
	end := head + p.Len()
	elems := p.elems()

	if n == 1 && (head != 0 || end != w) {
		d.Head = Partial[T]{Elem: &elems[0], From: head, To: end}
		return d
	}

	lo, hi := 0, n
	if head != 0 {
		d.Head = Partial[T]{Elem: &elems[0], From: head, To: w}
		lo = 1
	}
	if tail := end % w; tail != 0 {
		d.Tail = Partial[T]{Elem: &elems[n-1], From: 0, To: tail}
		hi = n - 1
	}
	d.Body = elems[lo:hi]
	return d
}
