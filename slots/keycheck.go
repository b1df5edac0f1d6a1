//go:build !slotkitunsafe

package slots

import "fmt"

// verifyOwner panics when the key was issued by a different instance.
// Compiled out with the slotkitunsafe build tag.
func (s *Slots[T]) verifyOwner(k *Key[T]) {
	if k.owner != s.id {
		panic(fmt.Sprintf("slots: key from instance %d used in instance %d", k.owner, s.id))
	}
}
