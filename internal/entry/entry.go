// Package entry implements the slot storage and free-list bookkeeping shared
// by the public layers. It is conceptually private: the tagged slot
// representation and the intrusive free chain are implementation details that
// the unrestricted, slots and slotmap packages build their contracts on.
package entry

import (
	"errors"
	"fmt"
	"iter"
)

// Debug flag - set to true to walk the free chain after every mutation
// (compile-time toggle).
const debugChain = false

type tag uint8

const (
	// emptyLast marks the bottom of the free stack. It is the zero value,
	// so a zeroed slot is a well-formed chain terminator.
	emptyLast tag = iota
	// emptyNext marks a free slot whose next field links to the slot that
	// was the top of the free stack when this one was pushed.
	emptyNext
	// used marks a slot holding a live item.
	used
)

// noFree is the nextFree sentinel for an empty free stack.
const noFree = -1

// Slot is one cell of a Store. A slot is either occupied or a link in the
// free chain; the chain is threaded through the slots themselves, so free
// slots cost no extra storage.
type Slot[T any] struct {
	tag  tag
	next int // previous free-stack top, valid only for emptyNext
	item T   // valid only for used
}

// Store is a fixed-capacity pool of slots with O(1) allocation and release.
// Freed slots are pushed onto a LIFO free stack, so the most recently freed
// index is reused first.
//
// The zero value is a usable store with capacity 0.
type Store[T any] struct {
	slots    []Slot[T]
	nextFree int // index of the free-stack top, or noFree
	count    int // occupied slots, maintained incrementally
}

// New returns an empty store with the given capacity. All slots start on the
// free stack, chained downward: the first allocation pops the highest index.
// A capacity of 0 yields a permanently full store.
func New[T any](capacity int) Store[T] {
	s := Store[T]{
		slots:    make([]Slot[T], capacity),
		nextFree: capacity - 1, // noFree when capacity == 0
	}
	// Slot 0 keeps its zero value, emptyLast: the chain bottom.
	for i := 1; i < len(s.slots); i++ {
		s.slots[i].tag = emptyNext
		s.slots[i].next = i - 1
	}
	return s
}

// Capacity returns the total number of slots.
func (s *Store[T]) Capacity() int {
	return len(s.slots)
}

// Count returns the number of occupied slots.
func (s *Store[T]) Count() int {
	return s.count
}

// Full reports whether every slot is occupied and the next Alloc will fail.
func (s *Store[T]) Full() bool {
	return s.count == len(s.slots)
}

// Alloc pops the free-stack top and returns its index. It fails only when
// the store is full. The returned slot keeps its free-chain tag until the
// caller writes to it.
func (s *Store[T]) Alloc() (int, bool) {
	if s.Full() {
		return 0, false
	}

	index := s.nextFree
	switch sl := &s.slots[index]; sl.tag {
	case emptyNext:
		s.nextFree = sl.next
	case emptyLast:
		s.nextFree = noFree
	default:
		// The chain only ever links empty slots; reaching a used slot means
		// the bookkeeping itself is broken, not the caller.
		panic(fmt.Sprintf("entry: used slot %d reached through the free chain", index))
	}
	s.count++

	if debugChain {
		s.mustValidChain()
	}
	return index, true
}

// Free pushes index onto the free stack. The caller must guarantee the slot
// was occupied and is freed exactly once per allocation; Free itself
// overwrites the slot, dropping the stored item.
func (s *Store[T]) Free(index int) {
	if s.nextFree == noFree {
		// First release after the stack drained (or after the store was
		// full): this slot becomes the new chain bottom.
		s.slots[index] = Slot[T]{tag: emptyLast}
	} else {
		s.slots[index] = Slot[T]{tag: emptyNext, next: s.nextFree}
	}
	s.nextFree = index
	s.count--

	if debugChain {
		s.mustValidChain()
	}
}

// Put stores item in a free slot and returns its index. It fails only when
// the store is full.
func (s *Store[T]) Put(item T) (int, bool) {
	index, ok := s.Alloc()
	if !ok {
		return 0, false
	}
	s.slots[index] = Slot[T]{tag: used, item: item}
	return index, true
}

// Take removes and returns the item at index. It returns false for an
// out-of-range index or a free slot. The vacated slot is pushed onto the
// free stack and its item storage is zeroed so the store drops its reference.
func (s *Store[T]) Take(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.slots) {
		return zero, false
	}
	sl := &s.slots[index]
	if sl.tag != used {
		return zero, false
	}
	item := sl.item
	s.Free(index)
	return item, true
}

// Read invokes fn with the item at index and reports whether it did.
// fn is not called for an out-of-range index or a free slot.
func (s *Store[T]) Read(index int, fn func(item T)) bool {
	if index < 0 || index >= len(s.slots) {
		return false
	}
	sl := &s.slots[index]
	if sl.tag != used {
		return false
	}
	fn(sl.item)
	return true
}

// Modify invokes fn with a pointer to the item at index and reports whether
// it did. fn is not called for an out-of-range index or a free slot.
func (s *Store[T]) Modify(index int, fn func(item *T)) bool {
	if index < 0 || index >= len(s.slots) {
		return false
	}
	sl := &s.slots[index]
	if sl.tag != used {
		return false
	}
	fn(&sl.item)
	return true
}

// All returns an index/item sequence over the occupied slots, in slot order.
// Slot order is an implementation detail; callers must not rely on it
// matching insertion order.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.slots {
			if s.slots[i].tag == used {
				if !yield(i, s.slots[i].item) {
					return
				}
			}
		}
	}
}

// AllMut is like All but yields pointers, allowing in-place mutation of the
// items. Storing or taking while iterating is unsupported.
func (s *Store[T]) AllMut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range s.slots {
			if s.slots[i].tag == used {
				if !yield(i, &s.slots[i].item) {
					return
				}
			}
		}
	}
}

// CheckChain walks the free chain and verifies its structural invariants:
// followed from nextFree, the chain stays in bounds, visits exactly
// capacity-count slots, touches only empty slots, and terminates in a single
// emptyLast. A nil result means the chain is well formed.
func (s *Store[T]) CheckChain() error {
	free := len(s.slots) - s.count
	if free == 0 {
		if s.nextFree != noFree {
			return fmt.Errorf("entry: full store has free-stack top %d", s.nextFree)
		}
		return nil
	}

	seen := 0
	index := s.nextFree
	for {
		if index < 0 || index >= len(s.slots) {
			return fmt.Errorf("entry: free chain escapes the store at %d", index)
		}
		seen++
		if seen > free {
			return errors.New("entry: free chain visits more slots than are free")
		}
		switch sl := &s.slots[index]; sl.tag {
		case emptyNext:
			index = sl.next
		case emptyLast:
			if seen != free {
				return fmt.Errorf("entry: free chain ends after %d of %d free slots", seen, free)
			}
			return nil
		default:
			return fmt.Errorf("entry: used slot %d reached through the free chain", index)
		}
	}
}

func (s *Store[T]) mustValidChain() {
	if err := s.CheckChain(); err != nil {
		panic(err)
	}
}
