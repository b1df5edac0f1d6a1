package slots

// noCopy makes `go vet` report by-value copies of the containing type via
// the copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Key grants access to one stored item. Keys are created by Store, consumed
// by Take, and must only be presented to the instance that issued them.
//
// A Key must not be copied; possession of the one live *Key is what stands
// in for ownership of the slot.
type Key[T any] struct {
	_     noCopy
	owner uint64
	index int
	spent bool
}

// Index returns the underlying slot index. The index is a plain number with
// no validity guarantee; see TryRead.
func (k *Key[T]) Index() int {
	return k.index
}
