package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"keyagree/internal/domain"
	"keyagree/internal/util/memzero"
)

// Suite fixes the hash and key lengths used when splitting derived material.
type Suite struct {
	Name         string
	Hash         func() hash.Hash
	CipherKeyLen int
	MACKeyLen    int
}

// ChaCha20HMACSHA256 derives a 32-byte ChaCha20 key and a 32-byte HMAC-SHA256 key
// with HKDF-SHA256.
var ChaCha20HMACSHA256 = Suite{
	Name:         "CHACHA20-HMAC-SHA256",
	Hash:         sha256.New,
	CipherKeyLen: chacha20.KeySize,
	MACKeyLen:    sha256.Size,
}

// Validate checks that the suite can be used for derivation.
func (s Suite) Validate() error {
	if s.Hash == nil {
		return fmt.Errorf("%w: suite %q has no hash", ErrInvalidParameter, s.Name)
	}
	if s.CipherKeyLen <= 0 || s.MACKeyLen <= 0 {
		return fmt.Errorf("%w: suite %q key lengths must be positive (cipher %d, mac %d)",
			ErrInvalidParameter, s.Name, s.CipherKeyLen, s.MACKeyLen)
	}
	return nil
}

// DeriveSessionKeys runs HKDF over secret with an empty salt and info as the
// context label, then splits the output into a cipher key followed by a MAC key.
//
// The same (suite, secret, info) always yields the same keys. The returned keys
// are secret; call Wipe on them when the session ends.
func DeriveSessionKeys(suite Suite, secret, info []byte) (domain.SessionKeys, error) {
	if err := suite.Validate(); err != nil {
		return domain.SessionKeys{}, err
	}
	if len(secret) == 0 {
		return domain.SessionKeys{}, fmt.Errorf("%w: empty input secret", ErrInvalidParameter)
	}

	// The salt stays empty to match deployed peers; HKDF then uses a zero key
	// of hash length for the extract step.
	r := hkdf.New(suite.Hash, secret, nil, info)
	okm := make([]byte, suite.CipherKeyLen+suite.MACKeyLen)
	if _, err := io.ReadFull(r, okm); err != nil {
		memzero.Zero(okm)
		return domain.SessionKeys{}, fmt.Errorf("%w: %v", ErrDerivation, err)
	}
	return domain.SessionKeys{
		CipherKey: okm[:suite.CipherKeyLen:suite.CipherKeyLen],
		MACKey:    okm[suite.CipherKeyLen:],
	}, nil
}
