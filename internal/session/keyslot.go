package session

// KeySlot holds at most one pending key event. Setting it again before it is
// drained overwrites the earlier key, so a burst of keys delivered within one
// update cycle keeps only the last one.
type KeySlot struct {
	key     rune
	pending bool
}

// Set stores r as the pending key.
func (k *KeySlot) Set(r rune) {
	k.key = r
	k.pending = true
}

// Take returns the pending key and clears the slot.
func (k *KeySlot) Take() (rune, bool) {
	if !k.pending {
		return 0, false
	}
	k.pending = false
	return k.key, true
}
