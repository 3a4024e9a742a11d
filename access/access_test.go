package access

import (
	"testing"

	"github.com/astef/bitvec/store"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func checkAccessor[T store.Element](t *testing.T, a Accessor[T]) {
	t.Helper()
	var e T

	a.Or(&e, 0b1010)
	assert.Equal(t, T(0b1010), a.Load(&e))

	a.AndNot(&e, 0b0010)
	assert.Equal(t, T(0b1000), a.Load(&e))

	a.Xor(&e, 0b1100)
	assert.Equal(t, T(0b0100), a.Load(&e))

	a.StoreMasked(&e, 0b0011_0000, store.Ones[T]())
	assert.Equal(t, T(0b0011_0100), a.Load(&e))

	a.StoreMasked(&e, 0b0001_0100, 0)
	assert.Equal(t, T(0b0010_0000), a.Load(&e))

	Write(a, &e, T(1), true)
	Write(a, &e, T(0b0010_0000), false)
	assert.Equal(t, T(1), a.Load(&e))
}

func TestAccessors(t *testing.T) {
	t.Run("exclusive_u8", func(t *testing.T) { checkAccessor[uint8](t, Exclusive[uint8]{}) })
	t.Run("exclusive_u64", func(t *testing.T) { checkAccessor[uint64](t, Exclusive[uint64]{}) })
	t.Run("shared_u8", func(t *testing.T) { checkAccessor[uint8](t, Shared[uint8]{}) })
	t.Run("shared_u16", func(t *testing.T) { checkAccessor[uint16](t, Shared[uint16]{}) })
	t.Run("shared_u32", func(t *testing.T) { checkAccessor[uint32](t, Shared[uint32]{}) })
	t.Run("shared_u64", func(t *testing.T) { checkAccessor[uint64](t, Shared[uint64]{}) })
	t.Run("shared_uint", func(t *testing.T) { checkAccessor[uint](t, Shared[uint]{}) })

	assert.False(t, Exclusive[uint8]{}.Aliased())
	assert.True(t, Shared[uint8]{}.Aliased())
}

// hammer lets every bit of a single element be driven by its own goroutine.
// Each writer flips its bit many times and leaves it set on odd positions.
func hammer[T store.Element](t *testing.T) {
	t.Helper()
	const rounds = 2000
	var (
		e T
		a Shared[T]
		g errgroup.Group
	)
	for pos := uint(0); pos < store.Width[T](); pos++ {
		g.Go(func() error {
			mask := store.Bit[T](pos)
			for i := 0; i < rounds; i++ {
				a.Or(&e, mask)
				a.Xor(&e, mask)
				a.StoreMasked(&e, mask, store.Ones[T]())
				a.AndNot(&e, mask)
			}
			if pos%2 == 1 {
				a.Or(&e, mask)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	var expected T
	for pos := uint(1); pos < store.Width[T](); pos += 2 {
		expected |= store.Bit[T](pos)
	}
	assert.Equal(t, expected, a.Load(&e))
}

func TestSharedIsolation(t *testing.T) {
	t.Run("u8", hammer[uint8])
	t.Run("u16", hammer[uint16])
	t.Run("u32", hammer[uint32])
	t.Run("u64", hammer[uint64])
}
