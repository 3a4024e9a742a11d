package bitvec

import (
	"fmt"
	"hash"
	"iter"

	"github.com/astef/bitvec/order"
	"github.com/astef/bitvec/store"
	"github.com/cockroachdb/errors"
)

// Vec is an owned, growable sequence of bits stored in elements of type T,
// with bits placed inside each element according to O.
//
// A Vec keeps its elements in buf and describes the live bits with a BitPtr
// into buf. Views returned by Bits share buf: any operation that grows the
// Vec may move buf, after which older views no longer observe the Vec. Such
// operations must not run concurrently with any use of a view.
//
// The zero value is an empty Vec ready to use.
type Vec[O order.Order, T store.Element] struct {
	buf  []T
	ptr  BitPtr[T]
	opts options
}

// New returns an empty Vec. It does not allocate.
func New[O order.Order, T store.Element](opts ...Option) *Vec[O, T] {
	return &Vec[O, T]{opts: applyOptions(opts)}
}

// WithCapacity returns an empty Vec able to hold bits bits without
// reallocating.
func WithCapacity[O order.Order, T store.Element](bits int, opts ...Option) *Vec[O, T] {
	v := New[O, T](opts...)
	if err := v.Reserve(bits); err != nil {
		panic(err)
	}
	return v
}

// FromSlice copies the bits of s into a new Vec. The copy keeps the head
// of s, so the elements are moved whole.
func FromSlice[O order.Order, T store.Element](s Slice[O, T], opts ...Option) *Vec[O, T] {
	v := New[O, T](opts...)
	n := s.ptr.Elements()
	if n == 0 {
		return v
	}
	v.buf = make([]T, n)
	v.ptr = v.rebuild(s.ptr.Head(), s.ptr.Len())
	Copy(v.Bits(), s)
	return v
}

// FromBools returns a Vec holding bits in order.
func FromBools[O order.Order, T store.Element](bits ...bool) *Vec[O, T] {
	v := WithCapacity[O, T](len(bits))
	for _, b := range bits {
		v.Push(b)
	}
	return v
}

// Repeat returns a Vec of n bits all equal to value.
func Repeat[O order.Order, T store.Element](value bool, n int, opts ...Option) *Vec[O, T] {
	v := New[O, T](opts...)
	v.Resize(n, value)
	return v
}

func (v *Vec[O, T]) logger() *Logger {
	if v.opts.logger == nil {
		return noop
	}
	return v.opts.logger
}

// rebuild derives the pointer for length bits at head of buf.
func (v *Vec[O, T]) rebuild(head, length uint) BitPtr[T] {
	ptr, err := FromElems(v.buf, head, length)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "vector pointer"))
	}
	return ptr
}

// Len returns the number of bits in the vector.
func (v *Vec[O, T]) Len() int {
	return int(v.ptr.Len())
}

// IsEmpty reports whether the vector holds no bits.
func (v *Vec[O, T]) IsEmpty() bool {
	return v.ptr.IsEmpty()
}

// Cap returns the number of bits the vector can hold without reallocating.
func (v *Vec[O, T]) Cap() int {
	if len(v.buf) == 0 {
		return 0
	}
	return len(v.buf)*int(store.Width[T]()) - int(v.ptr.Head())
}

// Ptr returns the pointer describing the live bits.
func (v *Vec[O, T]) Ptr() BitPtr[T] {
	return v.ptr
}

// Bits borrows the live bits as an exclusive view.
func (v *Vec[O, T]) Bits() Slice[O, T] {
	return ViewOf[O](v.ptr)
}

// Elems returns the elements holding the live bits. Bits of those elements
// outside the live range have unspecified values.
func (v *Vec[O, T]) Elems() []T {
	return v.buf[:v.ptr.Elements()]
}

// Get returns the bit at index.
func (v *Vec[O, T]) Get(index int) (bool, error) {
	return v.Bits().Get(index)
}

// Set writes the bit at index.
func (v *Vec[O, T]) Set(index int, value bool) error {
	return v.Bits().Set(index, value)
}

// Toggle flips the bit at index.
func (v *Vec[O, T]) Toggle(index int) error {
	return v.Bits().Toggle(index)
}

// Reserve makes room for at least additional more bits.
func (v *Vec[O, T]) Reserve(additional int) error {
	if additional <= 0 {
		return nil
	}
	n := v.ptr.Len()
	if uint(additional) > uint(MaxBits)-n {
		return errors.Wrapf(ErrInvalidPointer, "capacity overflow: %d bits with %d more", n, additional)
	}
	need := int(elementsFor(v.ptr.Head(), n+uint(additional), store.Width[T]()))
	if need > len(v.buf) {
		v.grow(need)
	}
	return nil
}

// grow moves the vector into a buffer of at least need elements, at least
// doubling the current one. Elements move whole, so the head is unchanged.
func (v *Vec[O, T]) grow(need int) {
	w := int(store.Width[T]())
	newCap := max(need, 2*len(v.buf), (v.opts.minCapacity+w-1)/w)
	buf := make([]T, newCap)
	copy(buf, v.buf[:v.ptr.Elements()])

	head, n := v.ptr.Head(), v.ptr.Len()
	v.logger().logRealloc(len(v.buf), newCap, int(n))
	v.buf = buf
	v.ptr = v.rebuild(head, n)
}

func (v *Vec[O, T]) setLen(n uint) {
	v.ptr = v.ptr.withLen(n)
}

// Push appends a bit. It panics if the vector would exceed MaxBits.
func (v *Vec[O, T]) Push(bit bool) {
	if err := v.Reserve(1); err != nil {
		panic(err)
	}
	n := v.ptr.Len()
	v.setLen(n + 1)
	v.Bits().set(n, bit)
}

// Pop removes the last bit and returns it, or false when the vector is empty.
func (v *Vec[O, T]) Pop() (bit bool, ok bool) {
	n := v.ptr.Len()
	if n == 0 {
		return false, false
	}
	bit = v.Bits().get(n - 1)
	v.setLen(n - 1)
	return bit, true
}

// Insert places bit at index, shifting the bits after it up by one.
// index may equal Len().
func (v *Vec[O, T]) Insert(index int, bit bool) error {
	n := v.Len()
	if index < 0 || index > n {
		return errors.Wrapf(ErrIndexOutOfRange, "insertion index (is %d) should be <= len (is %d)", index, n)
	}
	v.Push(false)
	s := v.Bits()
	Copy(s.sub(uint(index)+1, uint(n)+1), s.sub(uint(index), uint(n)))
	s.set(uint(index), bit)
	return nil
}

// Remove deletes the bit at index, shifting the bits after it down by one,
// and returns it.
func (v *Vec[O, T]) Remove(index int) (bool, error) {
	n := v.Len()
	if err := checkIndex(index, n); err != nil {
		return false, err
	}
	s := v.Bits()
	bit := s.get(uint(index))
	Copy(s.sub(uint(index), uint(n)-1), s.sub(uint(index)+1, uint(n)))
	v.setLen(uint(n) - 1)
	return bit, nil
}

// Extend appends every bit produced by seq.
func (v *Vec[O, T]) Extend(seq iter.Seq[bool]) {
	for b := range seq {
		v.Push(b)
	}
}

// ExtendFromSlice appends the bits of s.
func (v *Vec[O, T]) ExtendFromSlice(s Slice[O, T]) {
	m := s.ptr.Len()
	if m == 0 {
		return
	}
	if err := v.Reserve(int(m)); err != nil {
		panic(err)
	}
	n := v.ptr.Len()
	v.setLen(n + m)
	Copy(v.Bits().sub(n, n+m), s)
}

// Truncate shortens the vector to n bits. It keeps the capacity and does
// nothing if n is not below Len().
func (v *Vec[O, T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < v.Len() {
		v.setLen(uint(n))
	}
}

// Clear removes every bit, keeping the capacity.
func (v *Vec[O, T]) Clear() {
	v.setLen(0)
}

// Resize changes the length to n, filling new bits with value.
func (v *Vec[O, T]) Resize(n int, value bool) {
	old := v.Len()
	if n <= old {
		v.Truncate(n)
		return
	}
	if err := v.Reserve(n - old); err != nil {
		panic(err)
	}
	v.setLen(uint(n))
	v.Bits().sub(uint(old), uint(n)).Fill(value)
}

// Clone returns a copy of the vector with just enough capacity.
func (v *Vec[O, T]) Clone() *Vec[O, T] {
	c := FromSlice(v.Bits())
	c.opts = v.opts
	return c
}

// CloneFrom makes v a copy of other. The existing buffer is reused when it
// is large enough: the elements of other are copied over it and the head is
// rewritten to match. Bits of v's buffer outside the new live range keep
// unspecified values.
func (v *Vec[O, T]) CloneFrom(other *Vec[O, T]) {
	if v == other {
		return
	}
	v.Clear()
	src := other.ptr.elems()
	need := len(src)
	if need > len(v.buf) {
		v.grow(need)
	} else {
		v.logger().logReuse(need, len(v.buf), other.Len())
	}
	copy(v.buf, src)
	if len(v.buf) == 0 {
		return
	}
	v.ptr.setHead(other.ptr.Head())
	v.setLen(other.ptr.Len())
}

// Equal reports whether both vectors hold the same bits.
func (v *Vec[O, T]) Equal(other *Vec[O, T]) bool {
	return v.Bits().Equal(other.Bits())
}

// Compare orders vectors lexicographically, see Slice.Compare.
func (v *Vec[O, T]) Compare(other *Vec[O, T]) int {
	return v.Bits().Compare(other.Bits())
}

// Hash writes the live bits to h, see Slice.Hash.
func (v *Vec[O, T]) Hash(h hash.Hash) {
	v.Bits().Hash(h)
}

// String renders the live bits, see Slice.String.
func (v *Vec[O, T]) String() string {
	return v.Bits().String()
}

// Format implements fmt.Formatter. %+v adds the pointer and capacity.
func (v *Vec[O, T]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s cap=%d %s", v.ptr, v.Cap(), v.Bits())
		return
	}
	v.Bits().Format(f, verb)
}

// IntoBox moves the bits into a Box sized to fit them. v is left empty.
func (v *Vec[O, T]) IntoBox() *Box[O, T] {
	b := &Box[O, T]{}
	if n := v.ptr.Elements(); n > 0 {
		b.buf = make([]T, n)
		copy(b.buf, v.buf[:n])
		ptr, err := FromElems(b.buf, v.ptr.Head(), v.ptr.Len())
		if err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "box pointer"))
		}
		b.ptr = ptr
	}
	v.buf, v.ptr = nil, BitPtr[T]{}
	return b
}
