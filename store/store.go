// Package store describes the unsigned integer types that can back a bit
// sequence, and the pure bit operations performed on a single element.
package store

import (
	"fmt"
	"unsafe"
)

// Element is the set of unsigned integer types usable as bit storage.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Size returns the size of T in bytes.
func Size[T Element]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Width returns the number of bits in T.
func Width[T Element]() uint {
	return uint(Size[T]()) * 8
}

// Ones returns an element with every bit set.
func Ones[T Element]() T {
	return ^T(0)
}

// Bit returns an element with only the physical bit pos set.
func Bit[T Element](pos uint) T {
	return T(1) << pos
}

// Test reports whether the physical bit pos of elem is set.
func Test[T Element](elem T, pos uint) bool {
	return elem>>pos&1 != 0
}

// Write returns elem with the physical bit pos set to value.
func Write[T Element](elem T, pos uint, value bool) T {
	if value {
		return elem | Bit[T](pos)
	}
	return elem &^ Bit[T](pos)
}

// MaskRange returns an element with every physical bit in [from, to) set.
// It requires from <= to <= Width[T]().
func MaskRange[T Element](from, to uint) T {
	n := to - from
	if n == 0 {
		return 0
	}
	if n >= Width[T]() {
		return Ones[T]()
	}
	return (T(1)<<n - 1) << from
}

// Name returns a short name of T for diagnostics.
func Name[T Element]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
