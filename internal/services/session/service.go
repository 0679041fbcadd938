package session

import (
	"fmt"

	"keyagree/internal/crypto"
	"keyagree/internal/domain"
	"keyagree/internal/protocol/tripledh"
)

// Service establishes session keys from encoded handshake inputs.
//
// Steps:
//  1. Parse our identity and ephemeral private keys.
//  2. Parse the peer's identity and ephemeral public keys.
//  3. Run the handshake for our role and return the derived keys.
type Service struct {
	codec     *crypto.KeyCodec
	handshake tripledh.Handshake
}

// New returns a session service. The handshake curve must match the codec's.
func New(codec *crypto.KeyCodec, handshake tripledh.Handshake) (*Service, error) {
	if handshake.Curve != codec.Curve() {
		return nil, fmt.Errorf("%w: codec uses %s, handshake uses %s",
			crypto.ErrKeyMismatch, codec.Curve(), handshake.Curve)
	}
	return &Service{codec: codec, handshake: handshake}, nil
}

// EstablishSession derives session keys for role. The returned keys are
// secret; call Wipe on them when the session ends.
func (s *Service) EstablishSession(
	role domain.Role,
	ownIdentityPrivate []byte,
	ownEphemeralPrivate []byte,
	peerIdentityPublic []byte,
	peerEphemeralPublic []byte,
) (domain.SessionKeys, error) {
	var (
		keys tripledh.Keys
		err  error
	)
	if keys.OwnIdentity, err = s.codec.ParsePrivateKey(ownIdentityPrivate); err != nil {
		return domain.SessionKeys{}, fmt.Errorf("own identity key: %w", err)
	}
	if keys.OwnEphemeral, err = s.codec.ParsePrivateKey(ownEphemeralPrivate); err != nil {
		return domain.SessionKeys{}, fmt.Errorf("own ephemeral key: %w", err)
	}
	if keys.PeerIdentity, err = s.codec.ParsePublicKey(peerIdentityPublic); err != nil {
		return domain.SessionKeys{}, fmt.Errorf("peer identity key: %w", err)
	}
	if keys.PeerEphemeral, err = s.codec.ParsePublicKey(peerEphemeralPublic); err != nil {
		return domain.SessionKeys{}, fmt.Errorf("peer ephemeral key: %w", err)
	}
	return s.handshake.Run(role, keys)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
