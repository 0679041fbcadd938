package crypto

import (
	"crypto/ecdh"
	"encoding/asn1"
	"fmt"
)

// Curve names a key-agreement curve.
type Curve string

const (
	CurveP256   Curve = "P-256"
	CurveP384   Curve = "P-384"
	CurveP521   Curve = "P-521"
	CurveX25519 Curve = "X25519"
)

// DefaultCurve is the curve used unless configured otherwise.
//
// TODO: P-256 is kept for compatibility with existing peers; review the
// move to X25519 together with the peers' protocol owners.
const DefaultCurve = CurveP256

var (
	oidPublicKeyECDSA  = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidPublicKeyX25519 = asn1.ObjectIdentifier{1, 3, 101, 110}

	oidNamedCurveP256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveP384 = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidNamedCurveP521 = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
)

// Curves lists every supported curve.
func Curves() []Curve {
	return []Curve{CurveP256, CurveP384, CurveP521, CurveX25519}
}

// ECDH returns the provider implementation of c.
func (c Curve) ECDH() (ecdh.Curve, error) {
	switch c {
	case CurveP256:
		return ecdh.P256(), nil
	case CurveP384:
		return ecdh.P384(), nil
	case CurveP521:
		return ecdh.P521(), nil
	case CurveX25519:
		return ecdh.X25519(), nil
	default:
		return nil, fmt.Errorf("%w: curve %q", ErrAlgorithmUnavailable, string(c))
	}
}

// algorithm returns the AlgorithmIdentifier OIDs keys on c are encoded with.
// namedCurve is nil for curves without parameters.
func (c Curve) algorithm() (algo, namedCurve asn1.ObjectIdentifier) {
	switch c {
	case CurveP256:
		return oidPublicKeyECDSA, oidNamedCurveP256
	case CurveP384:
		return oidPublicKeyECDSA, oidNamedCurveP384
	case CurveP521:
		return oidPublicKeyECDSA, oidNamedCurveP521
	case CurveX25519:
		return oidPublicKeyX25519, nil
	}
	return nil, nil
}

// curveLabel names an ecdh.Curve for error messages.
func curveLabel(c ecdh.Curve) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
