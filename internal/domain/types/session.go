package types

import "keyagree/internal/util/memzero"

// SessionKeys is the output of one handshake: a cipher key and a MAC key.
// Both are secret and live as long as the secure session that uses them.
type SessionKeys struct {
	CipherKey []byte `json:"cipher_key"`
	MACKey    []byte `json:"mac_key"`
}

// Wipe zeroes both keys in place.
func (k *SessionKeys) Wipe() {
	memzero.ZeroAll(k.CipherKey, k.MACKey)
}
