package bitvec

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidPointer is returned when a BitPtr would violate its alignment,
	// null, head or length invariants.
	ErrInvalidPointer = errors.New("invalid bit pointer")
	// ErrOutOfBounds is returned when a range exceeds the length of a region.
	ErrOutOfBounds = errors.New("bit range out of bounds")
	// ErrIndexOutOfRange is returned when a single bit index is past the end.
	ErrIndexOutOfRange = errors.New("bit index out of range")
)

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return errors.Wrapf(ErrIndexOutOfRange, "index out of range [%d] with length %d", index, length)
	}
	return nil
}

func checkRange(from, to, length int) error {
	if from < 0 || from > to {
		return errors.Wrapf(ErrOutOfBounds, "slice bounds out of range [%d:%d]", from, to)
	}
	if to > length {
		return errors.Wrapf(ErrOutOfBounds, "slice bounds out of range [:%d] with length %d", to, length)
	}
	return nil
}
