// Package tripledh implements the triple Diffie-Hellman (3DHE) handshake used
// to agree on session keys between an identity party and a peer.
//
// # Overview
//
// Each side holds a long-lived identity key pair and a per-handshake
// ephemeral key pair, and knows the peer's two public keys. Three ECDH values
// are computed and concatenated:
//
// Initiator:
//  1. DH(IKa, EKb)
//  2. DH(EKa, IKb)
//  3. DH(EKa, EKb)
//
// Responder:
//  1. DH(EKb, IKa)
//  2. DH(IKb, EKa)
//  3. DH(EKb, EKa)
//
// Both lists name the same three products in the same order, so the
// concatenations are byte-identical. The result is run through HKDF with a
// fixed, versioned context label to produce a cipher key and a MAC key.
//
// # Errors
//
// Keys that are not all on the configured curve produce crypto.ErrKeyMismatch.
// ECDH and derivation failures are returned unchanged and never come with
// partial key material.
//
// # Security notes
//
// The identity products authenticate both parties; the ephemeral-ephemeral
// product gives forward secrecy once ephemeral private keys are discarded.
// Combined secrets are wiped as soon as the session keys exist.
package tripledh
