// Package channel seals application payloads with the session keys produced
// by the triple Diffie-Hellman handshake.
//
// Messages are encrypted with ChaCha20 under the cipher key and then
// authenticated with HMAC-SHA256 under the MAC key (encrypt-then-MAC):
//
//	nonce (12) || ciphertext || tag (32)
//
// The tag covers the nonce, the length-prefixed associated data and the
// ciphertext. Nonces are random, so Seal and Open may be called from several
// goroutines at once; Close must not race with them.
package channel
