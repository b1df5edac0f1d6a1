//go:build slotkitunsafe

package slots

// verifyOwner is compiled out: presenting a key to a foreign instance is
// undefined-contract territory and addresses whatever the raw index reaches.
func (s *Slots[T]) verifyOwner(*Key[T]) {}
