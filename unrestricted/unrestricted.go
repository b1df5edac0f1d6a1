package unrestricted

import (
	"iter"

	"github.com/joshuapare/slotkit/internal/entry"
)

// Slots is fixed-capacity slot storage addressed by raw integer indices.
// All accesses are bounds-checked and fallible; see the package
// documentation for the access disciplines this layer does and does not
// provide.
//
// The zero value is a usable store with capacity 0.
type Slots[T any] struct {
	store entry.Store[T]
}

// New returns an empty store with room for capacity items. The capacity is
// fixed for the life of the store; a capacity of 0 is valid and behaves as a
// permanently full store.
func New[T any](capacity int) *Slots[T] {
	return &Slots[T]{store: entry.New[T](capacity)}
}

// Capacity returns the total number of slots.
func (s *Slots[T]) Capacity() int {
	return s.store.Capacity()
}

// Count returns the number of occupied slots.
func (s *Slots[T]) Count() int {
	return s.store.Count()
}

// IsFull reports whether every slot is occupied and the next Store will fail.
func (s *Slots[T]) IsFull() bool {
	return s.store.Full()
}

// Store places item in a free slot and returns the slot's index. When the
// store is full it returns ErrFull and the item is not stored.
func (s *Slots[T]) Store(item T) (int, error) {
	index, ok := s.store.Put(item)
	if !ok {
		return 0, ErrFull
	}
	return index, nil
}

// Take removes and returns the item at index. It returns false when index is
// out of range or addresses a free slot.
//
// The vacated slot goes to the top of the free stack: the next Store reuses
// it first.
func (s *Slots[T]) Take(index int) (T, bool) {
	return s.store.Take(index)
}

// Read invokes fn with the item at index and reports whether it did. fn is
// never invoked when index is out of range or addresses a free slot.
func (s *Slots[T]) Read(index int, fn func(item T)) bool {
	return s.store.Read(index, fn)
}

// Modify invokes fn with a pointer to the item at index and reports whether
// it did. fn is never invoked when index is out of range or addresses a free
// slot.
func (s *Slots[T]) Modify(index int, fn func(item *T)) bool {
	return s.store.Modify(index, fn)
}

// Values returns a lazy sequence over the currently occupied items.
//
// Note: Do not rely on the order in which the items are yielded; it may
// differ from insertion order. Storing or taking while iterating is
// unsupported.
func (s *Slots[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.store.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// All is like Values but also yields each item's index.
func (s *Slots[T]) All() iter.Seq2[int, T] {
	return s.store.All()
}

// Mutate returns a sequence of pointers to the occupied items, allowing
// in-place modification. It cannot remove items; storing or taking while
// iterating is unsupported.
func (s *Slots[T]) Mutate() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range s.store.AllMut() {
			if !yield(item) {
				return
			}
		}
	}
}
