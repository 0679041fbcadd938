package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"keyagree/internal/domain"
	"keyagree/internal/util/memzero"
)

// Stretcher derives password digests with PBKDF2.
type Stretcher struct {
	hash   func() hash.Hash
	random io.Reader
}

// NewStretcher returns a Stretcher using h as the PRF hash (SHA-256 when nil)
// and random for salts (crypto/rand when nil).
func NewStretcher(h func() hash.Hash, random io.Reader) *Stretcher {
	if h == nil {
		h = sha256.New
	}
	if random == nil {
		random = rand.Reader
	}
	return &Stretcher{hash: h, random: random}
}

// GenerateSalt returns size random bytes.
func (s *Stretcher) GenerateSalt(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: salt size %d", ErrInvalidParameter, size)
	}
	salt := make([]byte, size)
	if _, err := io.ReadFull(s.random, salt); err != nil {
		return nil, fmt.Errorf("%w: read salt: %v", ErrRandomSource, err)
	}
	return salt, nil
}

// DeriveDigest stretches password with salt. The digest is ceil(bits/8) bytes.
//
// password is UTF-8 text used byte for byte; Unicode normalization is the
// caller's job. It is not retained, so the caller may wipe it afterwards.
func (s *Stretcher) DeriveDigest(password, salt []byte, iterations, bits int) (domain.PasswordDigest, error) {
	if iterations <= 0 {
		return domain.PasswordDigest{}, fmt.Errorf("%w: iterations %d", ErrInvalidParameter, iterations)
	}
	if bits <= 0 {
		return domain.PasswordDigest{}, fmt.Errorf("%w: output length %d bits", ErrInvalidParameter, bits)
	}
	if len(salt) == 0 {
		return domain.PasswordDigest{}, fmt.Errorf("%w: empty salt", ErrInvalidParameter)
	}

	return domain.PasswordDigest{
		Digest:     pbkdf2.Key(password, salt, iterations, (bits+7)/8, s.hash),
		Salt:       append([]byte(nil), salt...),
		Iterations: iterations,
		Bits:       bits,
	}, nil
}

// VerifyDigest recomputes the digest of password with d's parameters and
// compares it in constant time.
func (s *Stretcher) VerifyDigest(password []byte, d domain.PasswordDigest) (bool, error) {
	got, err := s.DeriveDigest(password, d.Salt, d.Iterations, d.Bits)
	if err != nil {
		return false, err
	}
	defer memzero.Zero(got.Digest)
	return subtle.ConstantTimeCompare(got.Digest, d.Digest) == 1, nil
}
