package crypto

import (
	"crypto/ecdh"
	"fmt"
)

// SharedSecret computes raw ECDH between priv and pub.
//
// The result is secret, must be wiped by the caller, and must never be used
// as a key directly; feed it to DeriveSessionKeys.
func SharedSecret(priv *ecdh.PrivateKey, pub *ecdh.PublicKey) ([]byte, error) {
	if priv == nil || pub == nil {
		return nil, fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	if priv.Curve() != pub.Curve() {
		return nil, fmt.Errorf("%w: private key on %s, public key on %s",
			ErrKeyMismatch, curveLabel(priv.Curve()), curveLabel(pub.Curve()))
	}
	secret, err := priv.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return secret, nil
}
