// Package crypto holds the key-agreement primitives used by keyagree.
//
// Contents
//
//   - Curve selection (Curve, DefaultCurve). The curve is a process-wide
//     protocol constant: both ends of a handshake must use the same one.
//   - KeyCodec: PKCS#8 / X.509 SPKI parsing and encoding, key generation.
//   - SharedSecret: raw ECDH between one private and one public key.
//   - DeriveSessionKeys: HKDF extract-then-expand into a cipher key and a
//     MAC key, sized by a Suite.
//   - Stretcher: PBKDF2 password stretching with random salts.
//   - Fingerprint: short digests of encoded public keys for display.
//
// # Errors
//
// Every error returned from this package wraps one of the sentinel errors in
// errors.go; match them with errors.Is. No failing call returns key material.
//
// # Notes
//
// All functions are stateless and safe for concurrent use. Returned secrets
// (private keys, shared secrets, derived keys) belong to the caller, who
// should wipe them with memzero once they are no longer needed.
package crypto
