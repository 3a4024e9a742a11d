package access

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/astef/bitvec/store"
)

const (
	lockStripes = 64
	cacheLine   = 64
)

type stripe struct {
	sync.Mutex
	_ [cacheLine - unsafe.Sizeof(sync.Mutex{})]byte
}

// locks serializes shared access to elements without atomic primitives.
var locks [lockStripes]stripe

func lockFor[T store.Element](p *T) *sync.Mutex {
	addr := uintptr(unsafe.Pointer(p)) / store.Size[T]()
	return &locks[addr%lockStripes].Mutex
}

// Shared is the capability of one of several live references to an element.
// Concurrent mutations of different bits of the same element never lose each
// other's writes.
type Shared[T store.Element] struct{}

func (Shared[T]) Aliased() bool { return true }

func (Shared[T]) Load(p *T) T {
	switch store.Size[T]() {
	case 4:
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(p))))
	case 8:
		return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(p))))
	}
	mu := lockFor(p)
	mu.Lock()
	v := *p
	mu.Unlock()
	return v
}

func (Shared[T]) Or(p *T, mask T) {
	switch store.Size[T]() {
	case 4:
		atomic.OrUint32((*uint32)(unsafe.Pointer(p)), uint32(mask))
		return
	case 8:
		atomic.OrUint64((*uint64)(unsafe.Pointer(p)), uint64(mask))
		return
	}
	mu := lockFor(p)
	mu.Lock()
	*p |= mask
	mu.Unlock()
}

func (Shared[T]) AndNot(p *T, mask T) {
	switch store.Size[T]() {
	case 4:
		atomic.AndUint32((*uint32)(unsafe.Pointer(p)), ^uint32(mask))
		return
	case 8:
		atomic.AndUint64((*uint64)(unsafe.Pointer(p)), ^uint64(mask))
		return
	}
	mu := lockFor(p)
	mu.Lock()
	*p &^= mask
	mu.Unlock()
}

func (s Shared[T]) Xor(p *T, mask T) {
	s.update(p, func(old T) T { return old ^ mask })
}

func (s Shared[T]) StoreMasked(p *T, mask, value T) {
	s.update(p, func(old T) T { return old&^mask | value&mask })
}

// update applies fn to the element with a compare-and-swap loop, or under
// the element's lock for widths without atomics.
func (Shared[T]) update(p *T, fn func(T) T) {
	switch store.Size[T]() {
	case 4:
		addr := (*uint32)(unsafe.Pointer(p))
		for {
			old := atomic.LoadUint32(addr)
			if atomic.CompareAndSwapUint32(addr, old, uint32(fn(T(old)))) {
				return
			}
		}
	case 8:
		addr := (*uint64)(unsafe.Pointer(p))
		for {
			old := atomic.LoadUint64(addr)
			if atomic.CompareAndSwapUint64(addr, old, uint64(fn(T(old)))) {
				return
			}
		}
	}
	mu := lockFor(p)
	mu.Lock()
	*p = fn(*p)
	mu.Unlock()
}
