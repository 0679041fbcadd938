package crypto

import (
	"bytes"
	"encoding/asn1"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"

	"keyagree/internal/util/memzero"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// decodeBlob turns a raw DER, PEM or base64 key blob into DER. owned is true
// when der is a fresh buffer the caller may wipe.
func decodeBlob(enc []byte) (der []byte, owned bool, err error) {
	if len(enc) == 0 {
		return nil, false, fmt.Errorf("%w: empty key", ErrKeyFormat)
	}
	// DER always starts with a SEQUENCE tag; textual forms never do.
	if enc[0] == 0x30 {
		return enc, false, nil
	}

	text := bytes.TrimSpace(enc)
	if len(text) == 0 {
		return nil, false, fmt.Errorf("%w: empty key", ErrKeyFormat)
	}
	if bytes.HasPrefix(text, []byte("-----BEGIN ")) {
		block, _ := pem.Decode(text)
		if block == nil {
			return nil, false, fmt.Errorf("%w: bad PEM block", ErrKeyFormat)
		}
		return block.Bytes, true, nil
	}

	compact := make([]byte, 0, len(text))
	for _, c := range text {
		switch c {
		case ' ', '\t', '\r', '\n':
		default:
			compact = append(compact, c)
		}
	}
	defer memzero.Zero(compact)

	for _, e := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding} {
		out := make([]byte, e.DecodedLen(len(compact)))
		n, derr := e.Decode(out, compact)
		if derr == nil && n > 0 {
			return out[:n], true, nil
		}
		memzero.Zero(out)
	}
	return nil, false, fmt.Errorf("%w: neither DER, PEM nor base64", ErrKeyFormat)
}

// keyInfo is the algorithm part of a PKCS#8 or SPKI structure.
type keyInfo struct {
	algo       asn1.ObjectIdentifier
	namedCurve asn1.ObjectIdentifier
}

// inspectPKCS8 reads the AlgorithmIdentifier of a PKCS#8 PrivateKeyInfo.
func inspectPKCS8(der []byte) (keyInfo, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	var version int64
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return keyInfo{}, fmt.Errorf("%w: not a PKCS#8 sequence", ErrKeyFormat)
	}
	if !seq.ReadASN1Integer(&version) {
		return keyInfo{}, fmt.Errorf("%w: missing PKCS#8 version", ErrKeyFormat)
	}
	info, err := readAlgorithmIdentifier(&seq)
	if err != nil {
		return keyInfo{}, err
	}
	var key cryptobyte.String
	if !seq.ReadASN1(&key, casn1.OCTET_STRING) || len(key) == 0 {
		return keyInfo{}, fmt.Errorf("%w: missing PKCS#8 private key", ErrKeyFormat)
	}
	if err := checkPrivateKeyBody(info, key); err != nil {
		return keyInfo{}, err
	}
	return info, nil
}

// checkPrivateKeyBody checks the structure inside the PKCS#8 privateKey
// OCTET STRING. Scalar range checks are left to x509.
func checkPrivateKeyBody(info keyInfo, key cryptobyte.String) error {
	switch {
	case info.algo.Equal(oidPublicKeyECDSA):
		// RFC 5915 ECPrivateKey: SEQUENCE { version INTEGER, privateKey OCTET STRING, ... }
		var ecKey, d cryptobyte.String
		var version int64
		if !key.ReadASN1(&ecKey, casn1.SEQUENCE) || !key.Empty() ||
			!ecKey.ReadASN1Integer(&version) ||
			!ecKey.ReadASN1(&d, casn1.OCTET_STRING) || len(d) == 0 {
			return fmt.Errorf("%w: bad ECPrivateKey", ErrKeyFormat)
		}
	case info.algo.Equal(oidPublicKeyX25519):
		// RFC 8410 CurvePrivateKey: OCTET STRING of 32 bytes.
		var d cryptobyte.String
		if !key.ReadASN1(&d, casn1.OCTET_STRING) || !key.Empty() || len(d) != 32 {
			return fmt.Errorf("%w: bad X25519 private key", ErrKeyFormat)
		}
	}
	return nil
}

// inspectSPKI reads the AlgorithmIdentifier of a SubjectPublicKeyInfo.
func inspectSPKI(der []byte) (keyInfo, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return keyInfo{}, fmt.Errorf("%w: not a SubjectPublicKeyInfo sequence", ErrKeyFormat)
	}
	info, err := readAlgorithmIdentifier(&seq)
	if err != nil {
		return keyInfo{}, err
	}
	var bits cryptobyte.String
	if !seq.ReadASN1(&bits, casn1.BIT_STRING) || len(bits) < 2 {
		return keyInfo{}, fmt.Errorf("%w: missing public key bit string", ErrKeyFormat)
	}
	return info, nil
}

func readAlgorithmIdentifier(s *cryptobyte.String) (keyInfo, error) {
	var algID cryptobyte.String
	var info keyInfo
	if !s.ReadASN1(&algID, casn1.SEQUENCE) || !algID.ReadASN1ObjectIdentifier(&info.algo) {
		return keyInfo{}, fmt.Errorf("%w: bad AlgorithmIdentifier", ErrKeyFormat)
	}
	if algID.PeekASN1Tag(casn1.OBJECT_IDENTIFIER) {
		if !algID.ReadASN1ObjectIdentifier(&info.namedCurve) {
			return keyInfo{}, fmt.Errorf("%w: bad curve parameters", ErrKeyFormat)
		}
	}
	return info, nil
}

// matches reports whether info describes a key on c.
func (info keyInfo) matches(c Curve) bool {
	algo, namedCurve := c.algorithm()
	if algo == nil || !info.algo.Equal(algo) {
		return false
	}
	if namedCurve == nil {
		return len(info.namedCurve) == 0
	}
	return info.namedCurve.Equal(namedCurve)
}

func (info keyInfo) String() string {
	if len(info.namedCurve) == 0 {
		return info.algo.String()
	}
	return info.algo.String() + "/" + info.namedCurve.String()
}
