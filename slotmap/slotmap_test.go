package slotmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/slotmap"
)

// Test_StaleHandleRejected verifies the core generational property: after
// free and reuse of the same slot, the old handle misses and the new handle
// hits, even though both carry the same index bits.
func Test_StaleHandleRejected(t *testing.T) {
	m := slotmap.New[int](8)

	h1, err := m.Store(5)
	require.NoError(t, err)

	item, ok := m.Take(h1)
	require.True(t, ok)
	require.Equal(t, 5, item)

	h2, err := m.Store(6)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	// Same underlying slot: capacity 8 means the low 3 bits are the index.
	require.Equal(t, h1&7, h2&7)

	require.False(t, m.Read(h1, func(int) { t.Fatal("stale handle read") }))

	got := 0
	require.True(t, m.Read(h2, func(v int) { got = v }))
	require.Equal(t, 6, got)
}

// Test_HandleLayout locks the observable bit layout: capacity 8 gives a
// 3-bit index field, a fresh chain allocates the highest index first, and
// the generation starts at 1.
func Test_HandleLayout(t *testing.T) {
	m := slotmap.New[int](8)

	h1, err := m.Store(5)
	require.NoError(t, err)
	require.Equal(t, slotmap.Handle(8|7), h1)

	_, ok := m.Take(h1)
	require.True(t, ok)

	h2, err := m.Store(6)
	require.NoError(t, err)
	require.Equal(t, slotmap.Handle(16|7), h2)
}

// Test_Take_SecondTimeFails verifies a handle is dead once taken.
func Test_Take_SecondTimeFails(t *testing.T) {
	m := slotmap.New[string](4)

	h, _ := m.Store("x")
	_, ok := m.Take(h)
	require.True(t, ok)

	_, ok = m.Take(h)
	require.False(t, ok)
	require.Equal(t, 0, m.Count())
}

// Test_Modify_ThroughHandle verifies in-place mutation with a live handle
// and rejection with a stale one.
func Test_Modify_ThroughHandle(t *testing.T) {
	m := slotmap.New[int](4)

	h, _ := m.Store(10)
	require.True(t, m.Modify(h, func(v *int) { *v += 5 }))

	got := 0
	require.True(t, m.Read(h, func(v int) { got = v }))
	require.Equal(t, 15, got)

	_, _ = m.Take(h)
	require.False(t, m.Modify(h, func(*int) { t.Fatal("stale handle modify") }))
}

// Test_VisitorNotCalled verifies the no-call guarantee for stale,
// out-of-range and never-issued handles.
func Test_VisitorNotCalled(t *testing.T) {
	m := slotmap.New[int](5) // 3-bit index field, indices 5..7 unreachable

	h, _ := m.Store(1)
	stale := h
	_, _ = m.Take(h)

	calls := 0
	for _, bad := range []slotmap.Handle{stale, 0, 7, 1<<40 | 3} {
		m.Read(bad, func(int) { calls++ })
		m.Modify(bad, func(*int) { calls++ })
		_, ok := m.Take(bad)
		require.False(t, ok)
	}
	require.Zero(t, calls)
}

// Test_Store_FillToCapacity verifies exhaustion semantics and that every
// issued handle stays valid while its item lives.
func Test_Store_FillToCapacity(t *testing.T) {
	const capacity = 6
	m := slotmap.New[int](capacity)

	handles := make([]slotmap.Handle, 0, capacity)
	for i := range capacity {
		h, err := m.Store(i * 10)
		require.NoError(t, err)
		handles = append(handles, h)
	}

	require.True(t, m.IsFull())
	_, err := m.Store(999)
	require.ErrorIs(t, err, slotmap.ErrFull)
	require.Equal(t, capacity, m.Count())

	for i, h := range handles {
		got := -1
		require.True(t, m.Read(h, func(v int) { got = v }))
		require.Equal(t, i*10, got)
	}
}

// Test_ZeroCapacity verifies a 0-capacity map never crashes.
func Test_ZeroCapacity(t *testing.T) {
	m := slotmap.New[int](0)

	_, err := m.Store(1)
	require.ErrorIs(t, err, slotmap.ErrFull)
	require.False(t, m.Read(0, func(int) { t.Fatal("visitor ran") }))
	_, ok := m.Take(0)
	require.False(t, ok)
}

// Test_CapacityOne verifies the degenerate 0-bit index field: the whole
// handle is generation.
func Test_CapacityOne(t *testing.T) {
	m := slotmap.New[string](1)

	h1, err := m.Store("a")
	require.NoError(t, err)
	require.Equal(t, slotmap.Handle(1), h1)

	_, ok := m.Take(h1)
	require.True(t, ok)

	h2, err := m.Store("b")
	require.NoError(t, err)
	require.Equal(t, slotmap.Handle(2), h2)
	require.False(t, m.Read(h1, func(string) { t.Fatal("stale handle read") }))
}

// Test_GenerationAdvancesPerStore verifies the counter bumps on every store
// call, independent of which slot is chosen.
func Test_GenerationAdvancesPerStore(t *testing.T) {
	m := slotmap.New[int](8)

	h1, _ := m.Store(1) // gen 1
	h2, _ := m.Store(2) // gen 2, different slot

	require.Equal(t, uint64(1), uint64(h1)>>3)
	require.Equal(t, uint64(2), uint64(h2)>>3)
}

// Test_Values_SkipsTaken verifies iteration over live items only.
func Test_Values_SkipsTaken(t *testing.T) {
	m := slotmap.New[int](4)
	_, _ = m.Store(1)
	h2, _ := m.Store(2)
	_, _ = m.Store(3)
	_, _ = m.Take(h2)

	got := map[int]bool{}
	for v := range m.Values() {
		got[v] = true
	}
	require.Equal(t, map[int]bool{1: true, 3: true}, got)
	require.Equal(t, 2, m.Count())
}

// Test_All_YieldsLiveHandles verifies the handles yielded by All are usable.
func Test_All_YieldsLiveHandles(t *testing.T) {
	m := slotmap.New[int](4)
	_, _ = m.Store(7)
	_, _ = m.Store(9)

	for h, v := range m.All() {
		got := -1
		require.True(t, m.Read(h, func(x int) { got = x }))
		require.Equal(t, v, got)
	}
}
