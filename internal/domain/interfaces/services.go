package interfaces

import (
	domaintypes "keyagree/internal/domain/types"
)

// KeyService creates encoded key pairs and fingerprints public keys.
type KeyService interface {
	GenerateKeyPair() (domaintypes.EncodedKeyPair, domaintypes.Fingerprint, error)
	FingerprintPublicKey(encoded []byte) (domaintypes.Fingerprint, error)
}

// SessionService runs the triple Diffie-Hellman handshake on encoded keys.
type SessionService interface {
	EstablishSession(
		role domaintypes.Role,
		ownIdentityPrivate []byte,
		ownEphemeralPrivate []byte,
		peerIdentityPublic []byte,
		peerEphemeralPublic []byte,
	) (domaintypes.SessionKeys, error)
}

// PasswordService stretches passwords for storage and verifies them later.
type PasswordService interface {
	HashPassword(password []byte) (domaintypes.PasswordDigest, error)
	VerifyPassword(password []byte, digest domaintypes.PasswordDigest) (bool, error)
}
