// Package unrestricted provides fixed-capacity slot storage addressed by
// plain integer indices.
//
// # Overview
//
// A Slots value holds up to a fixed number of same-typed items and hands out
// the index of the slot each item landed in. Store, Take, Read and Modify
// are all O(1): free slots are kept on an intrusive LIFO free list threaded
// through the slot array itself, so no operation scans and no operation
// allocates after construction.
//
// As opposed to the slots package, nothing ties an index to the item it was
// issued for. Indices are plain ints: they can be copied, stored anywhere,
// and presented after the slot was freed. Every access is therefore
// fallible, and a stale index returns a miss rather than data.
//
// # Usage Example
//
//	pool := unrestricted.New[Conn](64)
//
//	idx, err := pool.Store(conn)
//	if err != nil {
//	    // pool full; conn was not stored
//	}
//
//	ok := pool.Read(idx, func(c Conn) {
//	    c.Ping()
//	})
//
//	conn, ok := pool.Take(idx)
//
// # The ABA problem
//
// This layer performs bounds checks but no generation checks. If a slot is
// freed and then reused, an index issued for the old occupant silently
// addresses the new one. Callers that cannot rule out stale indices should
// use the slotmap package, which detects reuse, or the slots package, which
// prevents it.
//
// # Thread Safety
//
// Slots values are not thread-safe. Callers must synchronize access
// externally.
package unrestricted
