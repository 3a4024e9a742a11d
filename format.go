package bitvec

import (
	"fmt"
	"strings"

	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
)

// number of element groups rendered before the middle is elided
const maxStringedElems = 8

// String renders the view as [len]{bits}, one group of bits per storage
// element. Views spanning more than 8 elements only show the first and last 4.
func (s Slice[O, T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]{", s.Len())
	s.writeGroups(&b, 'b', false)
	b.WriteString("}")
	return b.String()
}

// Format implements fmt.Formatter.
//
//	%v %s  the String form
//	%+v    the pointer followed by the String form
//	%b     the bits, one group per element
//	%o %x %X  the bits of every group read as octal or hex digits, first
//	       bit most significant; %#o, %#x add a 0o/0x prefix per group
func (s Slice[O, T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "%s ", s.ptr)
		}
		fmt.Fprint(f, s.String())
	case 's':
		fmt.Fprint(f, s.String())
	case 'b', 'o', 'x', 'X':
		var b strings.Builder
		s.writeGroups(&b, verb, f.Flag('#'))
		fmt.Fprint(f, b.String())
	default:
		fmt.Fprintf(f, "%%!%c(bitvec.Slice=%s)", verb, s.String())
	}
}

func (s Slice[O, T]) writeGroups(b *strings.Builder, verb rune, prefix bool) {
	var groups []Slice[O, T]
	for g := range s.Elements() {
		groups = append(groups, g)
	}

	if len(groups) <= maxStringedElems {
		writeJoined(b, groups, verb, prefix)
		return
	}
	const keep = maxStringedElems / 2
	skipped := 0
	for _, g := range groups[keep : len(groups)-keep] {
		skipped += g.Len()
	}
	writeJoined(b, groups[:keep], verb, prefix)
	fmt.Fprintf(b, " <more %d bits> ", skipped)
	writeJoined(b, groups[len(groups)-keep:], verb, prefix)
}

func writeJoined[O order.Order, T store.Element](b *strings.Builder, groups []Slice[O, T], verb rune, prefix bool) {
	for i, g := range groups {
		if i != 0 {
			b.WriteByte(' ')
		}
		g.writeDigits(b, verb, prefix)
	}
}

const digits = "0123456789abcdef"

// writeDigits renders the view in the radix selected by verb. Every digit
// covers the next 1, 3 or 4 bits; a short final run becomes a digit of its
// own.
func (s Slice[O, T]) writeDigits(b *strings.Builder, verb rune, prefix bool) {
	per := uint(1)
	switch verb {
	case 'o':
		per = 3
		if prefix {
			b.WriteString("0o")
		}
	case 'x', 'X':
		per = 4
		if prefix {
			b.WriteString("0x")
		}
	}
	n := s.ptr.Len()
	for from := uint(0); from < n; from += per {
		to := min(from+per, n)
		d := 0
		for i := from; i < to; i++ {
			d <<= 1
			if s.get(i) {
				d |= 1
			}
		}
		c := digits[d]
		if verb == 'X' && c >= 'a' {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
}
