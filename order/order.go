// Package order maps the logical index of a bit inside a storage element to
// the physical bit position it occupies.
//
// An Order must be a bijection over [0, W) for every element width W it is
// used with. Lsb0 and Msb0 cover the two conventions found in practice; custom
// orders can be checked with Verify.
package order

import (
	"github.com/astef/bitvec/store"
	"github.com/cockroachdb/errors"
)

// ErrNotBijective is returned by Verify when an order maps two indices onto
// the same physical position or outside of the element.
var ErrNotBijective = errors.New("bit order is not a bijection")

// Order translates an in-element index to a physical bit position.
//
// Implementations are expected to be zero-size types, so that the zero value
// of a type parameter constrained by Order is usable.
type Order interface {
	Position(width, index uint) uint
}

// Spanner is implemented by orders which keep every run of consecutive
// logical indices physically contiguous. Span returns the physical shift of
// the run holding the logical indices [from, from+n).
type Spanner interface {
	Span(width, from, n uint) uint
}

// Lsb0 places logical index 0 in the least significant bit.
type Lsb0 struct{}

func (Lsb0) Position(_, index uint) uint { return index }

func (Lsb0) Span(_, from, _ uint) uint { return from }

func (Lsb0) String() string { return "Lsb0" }

// Msb0 places logical index 0 in the most significant bit.
type Msb0 struct{}

func (Msb0) Position(width, index uint) uint { return width - 1 - index }

func (Msb0) Span(width, from, n uint) uint { return width - from - n }

func (Msb0) String() string { return "Msb0" }

// Select returns an element with only the bit at the logical index set.
func Select[O Order, T store.Element](index uint) T {
	var o O
	return store.Bit[T](o.Position(store.Width[T](), index))
}

// Mask returns an element selecting the logical indices [from, to).
func Mask[O Order, T store.Element](from, to uint) T {
	var o O
	w := store.Width[T]()
	if from >= to {
		return 0
	}
	if s, ok := any(o).(Spanner); ok {
		at := s.Span(w, from, to-from)
		return store.MaskRange[T](at, at+to-from)
	}
	var m T
	for i := from; i < to; i++ {
		m |= store.Bit[T](o.Position(w, i))
	}
	return m
}

// Span returns the physical shift of the logical run [from, from+n), and
// false when O does not keep runs contiguous.
func Span[O Order](width, from, n uint) (uint, bool) {
	var o O
	s, ok := any(o).(Spanner)
	if !ok {
		return 0, false
	}
	return s.Span(width, from, n), true
}

// Inverse returns the table mapping physical positions back to logical
// indices for the given width.
func Inverse(o Order, width uint) ([]uint, error) {
	inv := make([]uint, width)
	seen := make([]bool, width)
	for i := uint(0); i < width; i++ {
		p := o.Position(width, i)
		if p >= width {
			return nil, errors.Wrapf(ErrNotBijective, "index %d maps to position %d outside width %d", i, p, width)
		}
		if seen[p] {
			return nil, errors.Wrapf(ErrNotBijective, "index %d maps to position %d already taken by index %d", i, p, inv[p])
		}
		seen[p] = true
		inv[p] = i
	}
	return inv, nil
}

// Verify applies o and then its inverse to every index of [0, width) and
// checks that the identity comes back.
func Verify(o Order, width uint) error {
	inv, err := Inverse(o, width)
	if err != nil {
		return err
	}
	for i := uint(0); i < width; i++ {
		if back := inv[o.Position(width, i)]; back != i {
			return errors.Wrapf(ErrNotBijective, "index %d round-trips to %d", i, back)
		}
	}
	return nil
}

// VerifyAll runs Verify for every width a store.Element can have.
func VerifyAll(o Order) error {
	for _, w := range []uint{8, 16, 32, 64} {
		if err := Verify(o, w); err != nil {
			return errors.Wrapf(err, "width %d", w)
		}
	}
	return nil
}
