// Package slots provides fixed-capacity slot storage with capability keys:
// storing an item issues an opaque Key, and that key is required to modify
// or remove the item.
//
// # Overview
//
// A Key exists only while its item does. Store creates it, Take consumes it,
// and between the two a live key is a guarantee of presence: Read and Modify
// through a key cannot miss, so they return nothing to check. Because Go has
// no move semantics, "consumed" is enforced at runtime: a key is marked
// spent by Take, keys are pointer-only, and the type carries a noCopy field
// so `go vet` flags by-value copies.
//
// # Store and remove
//
//	table := slots.New[Session](128)
//
//	key, err := table.Store(session)
//	if err != nil {
//	    // table full; session was not stored
//	}
//
//	table.Read(key, func(s Session) { ... })   // cannot miss
//	table.Modify(key, func(s *Session) { ... })
//
//	session = table.Take(key) // key is now spent; reusing it panics
//
// # Contract violations
//
// Presenting a spent key, or a key born in a different Slots instance, is a
// programmer error and panics with a descriptive message. Expected
// conditions (a full table) are ordinary return values; panics are reserved
// for misuse that would otherwise corrupt unrelated slots.
//
// Instance verification is compiled in by default. Building with the
// `slotkitunsafe` tag removes the owner check; presenting a foreign key is
// then undefined-contract territory, addressing whatever the raw index
// reaches in the foreign instance.
//
// # Escaping the discipline
//
// Key.Index exposes the underlying slot index for opportunistic, fallible
// access through TryRead. An index carries no validity guarantee: after the
// key is consumed it reads as absent, and after the slot is reused it reads
// the new occupant.
//
// # Thread Safety
//
// Slots values are not thread-safe. Callers must synchronize access
// externally. The only process-wide state is the atomic counter seeding
// instance ids, which is safe under concurrent construction.
package slots
