// Package session runs the triple Diffie-Hellman handshake on encoded keys.
//
// It is the encoding boundary of the core: callers hand over PKCS#8 private
// keys and X.509 SPKI public keys (DER, PEM or base64) and get session keys
// back. Moving those blobs between peers is the transport layer's job.
package session
