package slots

import (
	"iter"
	"sync/atomic"

	"github.com/joshuapare/slotkit/unrestricted"
)

// ErrFull indicates that every slot is occupied and the item was not stored.
// It aliases the underlying layer's sentinel, so errors.Is matches across
// both packages.
var ErrFull = unrestricted.ErrFull

// instanceSeed issues process-wide unique ids to new instances so foreign
// keys can be recognized. The atomic increment is the only cross-instance
// shared state in the package.
var instanceSeed atomic.Uint64

// Slots is fixed-capacity slot storage guarded by capability keys. See the
// package documentation for the ownership discipline.
type Slots[T any] struct {
	id    uint64
	inner *unrestricted.Slots[T]
}

// New returns an empty store with room for capacity items. The capacity is
// fixed for the life of the store; a capacity of 0 is valid and behaves as a
// permanently full store.
func New[T any](capacity int) *Slots[T] {
	return &Slots[T]{
		id:    instanceSeed.Add(1),
		inner: unrestricted.New[T](capacity),
	}
}

// Capacity returns the total number of slots.
func (s *Slots[T]) Capacity() int {
	return s.inner.Capacity()
}

// Count returns the number of occupied slots.
func (s *Slots[T]) Count() int {
	return s.inner.Count()
}

// IsFull reports whether every slot is occupied and the next Store will fail.
func (s *Slots[T]) IsFull() bool {
	return s.inner.IsFull()
}

// Store places item in a free slot and returns the key to access it. When
// the store is full it returns ErrFull and the item is not stored.
func (s *Slots[T]) Store(item T) (*Key[T], error) {
	index, err := s.inner.Store(item)
	if err != nil {
		return nil, err
	}
	return &Key[T]{owner: s.id, index: index}, nil
}

// Take removes and returns the item the key was issued for, consuming the
// key. Any later use of the key panics.
func (s *Slots[T]) Take(k *Key[T]) T {
	s.verify(k)
	item, ok := s.inner.Take(k.index)
	if !ok {
		panic("slots: invalid key")
	}
	k.spent = true
	return item
}

// Read invokes fn with the item the key was issued for. A live key
// guarantees presence, so Read cannot miss; fn runs exactly once.
func (s *Slots[T]) Read(k *Key[T], fn func(item T)) {
	s.verify(k)
	if !s.inner.Read(k.index, fn) {
		panic("slots: invalid key")
	}
}

// Modify invokes fn with a pointer to the item the key was issued for,
// without consuming the key. fn runs exactly once.
func (s *Slots[T]) Modify(k *Key[T], fn func(item *T)) {
	s.verify(k)
	if !s.inner.Modify(k.index, fn) {
		panic("slots: invalid key")
	}
}

// TryRead reads by raw index instead of by key. Since an index may address a
// freed slot or lie outside the store, this access is fallible: it reports
// whether fn ran, and fn is never invoked on a miss.
func (s *Slots[T]) TryRead(index int, fn func(item T)) bool {
	return s.inner.Read(index, fn)
}

// Values returns a lazy sequence over the currently occupied items.
//
// Note: Do not rely on the order in which the items are yielded; it may
// differ from insertion order. Storing or taking while iterating is
// unsupported.
func (s *Slots[T]) Values() iter.Seq[T] {
	return s.inner.Values()
}

// All is like Values but also yields each item's index.
func (s *Slots[T]) All() iter.Seq2[int, T] {
	return s.inner.All()
}

// verify panics when the key cannot be a live key of this instance. The
// spent check always runs; the owner check is build-tag controlled.
func (s *Slots[T]) verify(k *Key[T]) {
	if k.spent {
		panic("slots: key used after take")
	}
	s.verifyOwner(k)
}
