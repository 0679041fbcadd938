package password

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"keyagree/internal/crypto"
	"keyagree/internal/domain"
)

const (
	// minPasswordRunes is the shortest password the strength policy accepts.
	minPasswordRunes = 12

	// maxIterationFactor bounds the iteration count of a digest presented for
	// verification, relative to the configured count for new digests.
	maxIterationFactor = 16

	// maxDigestBits bounds the digest length of a digest presented for verification.
	maxDigestBits = 4096
)

var (
	// ErrWeakPassword is returned by HashPassword when the strength policy is
	// on and the password fails it.
	ErrWeakPassword = fmt.Errorf(
		"password: too weak (need at least %d characters with upper and lower case letters, a digit and a symbol)",
		minPasswordRunes,
	)

	// ErrDigestLimits is returned by VerifyPassword for stored digests whose
	// parameters would make verification unreasonably expensive.
	ErrDigestLimits = fmt.Errorf("%w: digest parameters exceed verification limits", crypto.ErrInvalidParameter)
)

// Params are the stretching parameters used for new digests.
type Params struct {
	SaltBytes  int
	Iterations int
	Bits       int
	// Policy rejects weak passwords in HashPassword when set.
	Policy bool
}

// Service hashes and verifies passwords with a crypto.Stretcher.
type Service struct {
	stretcher *crypto.Stretcher
	params    Params
}

// New returns a password service.
func New(stretcher *crypto.Stretcher, params Params) *Service {
	return &Service{stretcher: stretcher, params: params}
}

// HashPassword stretches password with a fresh salt. password is not retained.
func (s *Service) HashPassword(password []byte) (domain.PasswordDigest, error) {
	if s.params.Policy && !strongEnough(password) {
		return domain.PasswordDigest{}, ErrWeakPassword
	}
	salt, err := s.stretcher.GenerateSalt(s.params.SaltBytes)
	if err != nil {
		return domain.PasswordDigest{}, err
	}
	return s.stretcher.DeriveDigest(password, salt, s.params.Iterations, s.params.Bits)
}

// VerifyPassword reports whether password produced digest. Parameters come
// from the digest, not from the service, so old digests keep verifying after
// the defaults change. Digests asking for far more work than the configured
// parameters are rejected with ErrDigestLimits before any stretching.
func (s *Service) VerifyPassword(password []byte, digest domain.PasswordDigest) (bool, error) {
	if err := s.checkLimits(digest); err != nil {
		return false, err
	}
	return s.stretcher.VerifyDigest(password, digest)
}

func (s *Service) checkLimits(d domain.PasswordDigest) error {
	maxIter := s.params.Iterations * maxIterationFactor
	if d.Iterations > maxIter {
		return fmt.Errorf("%w: %d iterations, at most %d", ErrDigestLimits, d.Iterations, maxIter)
	}
	if d.Bits > maxDigestBits {
		return fmt.Errorf("%w: %d bits, at most %d", ErrDigestLimits, d.Bits, maxDigestBits)
	}
	return nil
}

// charClass is a bit set of the character classes seen in a password.
type charClass uint8

const (
	classUpper charClass = 1 << iota
	classLower
	classDigit
	classSymbol

	allClasses = classUpper | classLower | classDigit | classSymbol
)

// strongEnough applies the strength policy to UTF-8 password bytes without
// copying them into a string.
func strongEnough(password []byte) bool {
	if utf8.RuneCount(password) < minPasswordRunes {
		return false
	}
	var seen charClass
	for rest := password; len(rest) > 0; {
		r, n := utf8.DecodeRune(rest)
		rest = rest[n:]
		switch {
		case unicode.IsUpper(r):
			seen |= classUpper
		case unicode.IsLower(r):
			seen |= classLower
		case unicode.IsDigit(r):
			seen |= classDigit
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			seen |= classSymbol
		}
		if seen == allClasses {
			return true
		}
	}
	return false
}

// Compile-time assertion that Service implements domain.PasswordService.
var _ domain.PasswordService = (*Service)(nil)
