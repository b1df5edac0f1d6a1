package slotmap

import (
	"iter"
	"math/bits"

	"github.com/joshuapare/slotkit/internal/entry"
)

// Handle addresses one stored item. It packs the slot index in the low
// bits with a per-map generation counter above, so a handle outlives its
// item only as a recognizable miss. Generations start at 1, so a map never
// issues the zero Handle short of counter wraparound.
type Handle uint64

// cell pairs the stored item with the handle it was issued under. Storing
// the whole handle rather than the bare generation makes validation a
// single equality test.
type cell[T any] struct {
	check Handle
	item  T
}

// Map is fixed-capacity slot storage with generation-checked handles. See
// the package documentation for the reuse-detection contract.
type Map[T any] struct {
	store      entry.Store[cell[T]]
	generation uint64
	shift      uint // index field width, fixed for the life of the map
}

// New returns an empty map with room for capacity items. The capacity is
// fixed for the life of the map; a capacity of 0 is valid and behaves as a
// permanently full map.
func New[T any](capacity int) *Map[T] {
	var shift uint
	if capacity > 0 {
		shift = uint(bits.Len(uint(capacity - 1)))
	}
	return &Map[T]{
		store: entry.New[cell[T]](capacity),
		shift: shift,
	}
}

// Capacity returns the total number of slots.
func (m *Map[T]) Capacity() int {
	return m.store.Capacity()
}

// Count returns the number of occupied slots.
func (m *Map[T]) Count() int {
	return m.store.Count()
}

// IsFull reports whether every slot is occupied and the next Store will fail.
func (m *Map[T]) IsFull() bool {
	return m.store.Full()
}

// pullGeneration advances the map-global counter and returns the fresh
// value. Wraparound is tolerated: it only weakens collision avoidance.
func (m *Map[T]) pullGeneration() uint64 {
	m.generation++
	return m.generation
}

func (m *Map[T]) buildHandle(index int) Handle {
	return Handle(uint64(index) | m.pullGeneration()<<m.shift)
}

func (m *Map[T]) extractIndex(h Handle) int {
	mask := uint64(1)<<m.shift - 1
	return int(uint64(h) & mask)
}

// Store places item in a free slot and returns its handle. The generation
// counter advances on every call, whichever slot is chosen. When the map is
// full it returns ErrFull and the item is not stored.
func (m *Map[T]) Store(item T) (Handle, error) {
	index, ok := m.store.Put(cell[T]{item: item})
	if !ok {
		return 0, ErrFull
	}
	h := m.buildHandle(index)
	m.store.Modify(index, func(c *cell[T]) { c.check = h })
	return h, nil
}

// Take removes and returns the item the handle was issued for. It returns
// false when the slot is free, out of range, or occupied by a later
// generation; the three cases are indistinguishable.
func (m *Map[T]) Take(h Handle) (T, bool) {
	var zero T
	index := m.extractIndex(h)

	match := false
	m.store.Read(index, func(c cell[T]) { match = c.check == h })
	if !match {
		return zero, false
	}

	c, ok := m.store.Take(index)
	if !ok {
		panic("slotmap: checked slot vanished")
	}
	return c.item, true
}

// Read invokes fn with the item the handle was issued for and reports
// whether it did. fn is never invoked when the handle no longer (or never
// did) match its slot.
func (m *Map[T]) Read(h Handle, fn func(item T)) bool {
	hit := false
	m.store.Read(m.extractIndex(h), func(c cell[T]) {
		if c.check == h {
			hit = true
			fn(c.item)
		}
	})
	return hit
}

// Modify invokes fn with a pointer to the item the handle was issued for
// and reports whether it did. fn is never invoked on a mismatch.
func (m *Map[T]) Modify(h Handle, fn func(item *T)) bool {
	hit := false
	m.store.Modify(m.extractIndex(h), func(c *cell[T]) {
		if c.check == h {
			hit = true
			fn(&c.item)
		}
	})
	return hit
}

// Values returns a lazy sequence over the currently occupied items.
//
// Note: Do not rely on the order in which the items are yielded; it may
// differ from insertion order. Storing or taking while iterating is
// unsupported.
func (m *Map[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range m.store.All() {
			if !yield(c.item) {
				return
			}
		}
	}
}

// All is like Values but also yields each item's live handle.
func (m *Map[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for _, c := range m.store.All() {
			if !yield(c.check, c.item) {
				return
			}
		}
	}
}
