package tripledh

import (
	"crypto/ecdh"
	"fmt"

	"keyagree/internal/crypto"
	"keyagree/internal/domain"
	"keyagree/internal/util/memzero"
)

// Keys are the four inputs of a handshake as seen by one party.
//
// The private keys are secret and stay owned by the caller.
type Keys struct {
	OwnIdentity   *ecdh.PrivateKey
	OwnEphemeral  *ecdh.PrivateKey
	PeerIdentity  *ecdh.PublicKey
	PeerEphemeral *ecdh.PublicKey
}

type privSlot int

const (
	ownIdentity privSlot = iota
	ownEphemeral
)

type pubSlot int

const (
	peerIdentity pubSlot = iota
	peerEphemeral
)

type pairing struct {
	priv privSlot
	pub  pubSlot
}

// schedule lists, per role, which private and public key feed each DH term.
// Only the first two terms differ between roles.
var schedule = map[domain.Role][3]pairing{
	domain.Initiator: {
		{ownIdentity, peerEphemeral},
		{ownEphemeral, peerIdentity},
		{ownEphemeral, peerEphemeral},
	},
	domain.Responder: {
		{ownEphemeral, peerIdentity},
		{ownIdentity, peerEphemeral},
		{ownEphemeral, peerEphemeral},
	},
}

func (k Keys) private(s privSlot) *ecdh.PrivateKey {
	if s == ownIdentity {
		return k.OwnIdentity
	}
	return k.OwnEphemeral
}

func (k Keys) public(s pubSlot) *ecdh.PublicKey {
	if s == peerIdentity {
		return k.PeerIdentity
	}
	return k.PeerEphemeral
}

// checkCurve verifies that all four keys are present and on curve.
func (k Keys) checkCurve(curve crypto.Curve) error {
	ec, err := curve.ECDH()
	if err != nil {
		return err
	}
	if k.OwnIdentity == nil || k.OwnEphemeral == nil || k.PeerIdentity == nil || k.PeerEphemeral == nil {
		return fmt.Errorf("%w: handshake needs all four keys", crypto.ErrInvalidKey)
	}
	for _, kc := range []struct {
		name  string
		curve ecdh.Curve
	}{
		{"own identity", k.OwnIdentity.Curve()},
		{"own ephemeral", k.OwnEphemeral.Curve()},
		{"peer identity", k.PeerIdentity.Curve()},
		{"peer ephemeral", k.PeerEphemeral.Curve()},
	} {
		if kc.curve != ec {
			return fmt.Errorf("%w: %s key is not on %s", crypto.ErrKeyMismatch, kc.name, curve)
		}
	}
	return nil
}

// Combine computes the three DH terms for role and returns their
// concatenation. The result is secret; wipe it once derived from.
func Combine(curve crypto.Curve, role domain.Role, keys Keys) ([]byte, error) {
	order, ok := schedule[role]
	if !ok {
		return nil, fmt.Errorf("%w: role %s", crypto.ErrInvalidParameter, role)
	}
	if err := keys.checkCurve(curve); err != nil {
		return nil, err
	}

	var combined []byte
	for i, p := range order {
		dh, err := crypto.SharedSecret(keys.private(p.priv), keys.public(p.pub))
		if err != nil {
			memzero.Zero(combined)
			return nil, fmt.Errorf("dh%d: %w", i+1, err)
		}
		if combined == nil {
			combined = make([]byte, 0, len(dh)*len(order))
		}
		combined = append(combined, dh...)
		memzero.Zero(dh)
	}
	return combined, nil
}

// Handshake binds the protocol constants both parties must agree on.
type Handshake struct {
	Curve       crypto.Curve
	Suite       crypto.Suite
	ContextInfo []byte
}

// Run performs the handshake for role and derives the session keys.
func (h Handshake) Run(role domain.Role, keys Keys) (domain.SessionKeys, error) {
	if len(h.ContextInfo) == 0 {
		return domain.SessionKeys{}, fmt.Errorf("%w: empty context info", crypto.ErrInvalidParameter)
	}
	combined, err := Combine(h.Curve, role, keys)
	if err != nil {
		return domain.SessionKeys{}, err
	}
	defer memzero.Zero(combined)

	return crypto.DeriveSessionKeys(h.Suite, combined, h.ContextInfo)
}
