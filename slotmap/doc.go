// Package slotmap provides fixed-capacity slot storage whose handles detect
// slot reuse.
//
// # Overview
//
// A Map hands out a Handle for every stored item. The handle packs the slot
// index together with a generation counter into one integer:
//
//	handle = index | generation << shift
//
// where shift is the number of bits needed to address the largest valid
// index, fixed at construction. The map keeps a single generation counter,
// bumps it on every Store, and records the full handle in the slot itself;
// validating a presented handle is one equality test. A handle issued for a
// previous occupant of a slot therefore no longer matches once the slot has
// been reused, closing the ABA hole the unrestricted layer leaves open.
//
// # Usage Example
//
//	m := slotmap.New[Entity](1024)
//
//	h, err := m.Store(entity)
//	if err != nil { ... }
//
//	ok := m.Read(h, func(e Entity) { ... }) // false once the slot is reused
//	e, ok := m.Take(h)
//
// # Guarantees
//
// The mitigation is probabilistic, not absolute. The generation counter is
// global to the map and wraps on overflow, so a stale handle can pass the
// check again only after the counter returns to the same value with the
// same slot free at that moment - at least 2^(64-shift) stores away. A
// mismatched handle and an out-of-range handle are deliberately
// indistinguishable: both are a miss, and the visitor does not run.
//
// # Thread Safety
//
// Map values are not thread-safe. Callers must synchronize access
// externally; the generation counter is owned by its map and never shared.
package slotmap
