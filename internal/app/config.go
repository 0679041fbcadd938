package app

import (
	"fmt"
	"io"

	"keyagree/internal/crypto"
)

// DefaultContextInfo is the HKDF context label. Both ends of a handshake must
// use the same value; bump the version suffix on any protocol change.
const DefaultContextInfo = "keyagree-3dhe-v1"

// Config holds runtime wiring options for building the app.
type Config struct {
	Curve       crypto.Curve // key-agreement curve, fixed per deployment
	ContextInfo string       // HKDF context label
	Suite       crypto.Suite // session key lengths and hash

	SaltBytes      int  // password salt size
	Iterations     int  // PBKDF2 iteration count
	DigestBits     int  // password digest length
	PasswordPolicy bool // reject weak passwords when hashing

	Random io.Reader // optional; defaults to crypto/rand
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Curve:       crypto.DefaultCurve,
		ContextInfo: DefaultContextInfo,
		Suite:       crypto.ChaCha20HMACSHA256,
		SaltBytes:   16,
		Iterations:  210000,
		DigestBits:  256,
	}
}

// Validate checks cfg before any component is built.
func (cfg Config) Validate() error {
	if _, err := cfg.Curve.ECDH(); err != nil {
		return err
	}
	if cfg.ContextInfo == "" {
		return fmt.Errorf("%w: context info is empty", crypto.ErrInvalidParameter)
	}
	if err := cfg.Suite.Validate(); err != nil {
		return err
	}
	if cfg.SaltBytes <= 0 || cfg.Iterations <= 0 || cfg.DigestBits <= 0 {
		return fmt.Errorf("%w: salt %d bytes, %d iterations, %d bits",
			crypto.ErrInvalidParameter, cfg.SaltBytes, cfg.Iterations, cfg.DigestBits)
	}
	return nil
}
