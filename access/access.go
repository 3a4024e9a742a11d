// Package access performs single-element bit mutations for views that may
// or may not share their storage elements with other views.
//
// Two capabilities exist:
//   - Exclusive: the holder is the only live reference to the element, a plain
//     read-modify-write is enough.
//   - Shared: other views may be mutating different bits of the same element
//     at the same time. 32-bit, 64-bit and word-sized elements use the
//     atomic primitives of sync/atomic; 8-bit and 16-bit elements have none,
//     so they are serialized through a striped lock table keyed by the
//     element address.
//
// An Accessor never changes bits outside of the mask it is given. It gives no
// ordering guarantee relative to anything else touching the same memory.
package access

import (
	"github.com/astef/bitvec/store"
)

// Accessor reads and mutates a single storage element.
type Accessor[T store.Element] interface {
	// Load reads the element.
	Load(p *T) T
	// Or sets the bits of mask.
	Or(p *T, mask T)
	// AndNot clears the bits of mask.
	AndNot(p *T, mask T)
	// Xor flips the bits of mask.
	Xor(p *T, mask T)
	// StoreMasked replaces the bits of mask with the matching bits of value.
	StoreMasked(p *T, mask, value T)
	// Aliased reports whether the accessor tolerates concurrent writers.
	Aliased() bool
}

// Write sets or clears the bits of mask.
func Write[T store.Element](a Accessor[T], p *T, mask T, value bool) {
	if value {
		a.Or(p, mask)
	} else {
		a.AndNot(p, mask)
	}
}

// Exclusive is the capability of the only live reference to an element.
type Exclusive[T store.Element] struct{}

func (Exclusive[T]) Load(p *T) T { return *p }

func (Exclusive[T]) Or(p *T, mask T) { *p |= mask }

func (Exclusive[T]) AndNot(p *T, mask T) { *p &^= mask }

func (Exclusive[T]) Xor(p *T, mask T) { *p ^= mask }

func (Exclusive[T]) StoreMasked(p *T, mask, value T) {
	*p = *p&^mask | value&mask
}

func (Exclusive[T]) Aliased() bool { return false }

var (
	_ Accessor[uint8]  = Exclusive[uint8]{}
	_ Accessor[uint64] = Shared[uint64]{}
)
