package slotmap

import "errors"

// ErrFull indicates that every slot is occupied and the item was not stored.
// It is the sole signal of pool exhaustion; the caller keeps the item.
var ErrFull = errors.New("slotmap: no free slot")
