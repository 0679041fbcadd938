package crypto

import "errors"

var (
	// ErrKeyFormat is returned for empty or undecodable key blobs.
	ErrKeyFormat = errors.New("crypto: malformed key encoding")

	// ErrUnsupportedCurve is returned when a decoded key is not on the configured curve.
	ErrUnsupportedCurve = errors.New("crypto: unsupported curve or key algorithm")

	// ErrKeyMismatch is returned when keys that must interoperate are on different
	// curves, or when the halves of a key pair do not belong together.
	ErrKeyMismatch = errors.New("crypto: key mismatch")

	// ErrInvalidKey is returned for structurally invalid keys such as off-curve
	// or low-order points.
	ErrInvalidKey = errors.New("crypto: invalid key")

	// ErrAlgorithmUnavailable is returned when the provider does not implement
	// the requested curve.
	ErrAlgorithmUnavailable = errors.New("crypto: algorithm unavailable")

	// ErrDerivation is returned when key expansion fails.
	ErrDerivation = errors.New("crypto: key derivation failed")

	// ErrInvalidParameter is returned for out-of-range sizes, lengths and counts.
	ErrInvalidParameter = errors.New("crypto: invalid parameter")

	// ErrRandomSource is returned when the configured random reader fails.
	ErrRandomSource = errors.New("crypto: random source failed")
)
