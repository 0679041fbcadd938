package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"io"

	"keyagree/internal/domain"
	"keyagree/internal/util/memzero"
)

// KeyPair is an ECDH key pair on a single curve.
type KeyPair struct {
	Private *ecdh.PrivateKey
	Public  *ecdh.PublicKey
}

// KeyCodec generates, parses and encodes key pairs on one fixed curve.
type KeyCodec struct {
	curve  Curve
	ec     ecdh.Curve
	random io.Reader
}

// NewKeyCodec returns a codec for curve. A nil random uses crypto/rand.
func NewKeyCodec(curve Curve, random io.Reader) (*KeyCodec, error) {
	ec, err := curve.ECDH()
	if err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}
	return &KeyCodec{curve: curve, ec: ec, random: random}, nil
}

// Curve returns the codec's curve.
func (c *KeyCodec) Curve() Curve { return c.curve }

// GenerateKeyPair returns a fresh random key pair.
func (c *KeyCodec) GenerateKeyPair() (KeyPair, error) {
	priv, err := c.ec.GenerateKey(c.random)
	if err != nil {
		return KeyPair{}, fmt.Errorf("%w: generate %s key: %v", ErrRandomSource, c.curve, err)
	}
	return KeyPair{Private: priv, Public: priv.PublicKey()}, nil
}

// ParseKeyPair decodes a PKCS#8 private key and its X.509 SPKI public key.
// Each blob may be raw DER, PEM or base64.
func (c *KeyCodec) ParseKeyPair(privateEncoded, publicEncoded []byte) (KeyPair, error) {
	priv, err := c.ParsePrivateKey(privateEncoded)
	if err != nil {
		return KeyPair{}, err
	}
	pub, err := c.ParsePublicKey(publicEncoded)
	if err != nil {
		return KeyPair{}, err
	}
	if !priv.PublicKey().Equal(pub) {
		return KeyPair{}, fmt.Errorf("%w: public key does not belong to private key", ErrKeyMismatch)
	}
	return KeyPair{Private: priv, Public: pub}, nil
}

// ParsePrivateKey decodes a PKCS#8 private key on the codec's curve.
func (c *KeyCodec) ParsePrivateKey(encoded []byte) (*ecdh.PrivateKey, error) {
	der, owned, err := decodeBlob(encoded)
	if err != nil {
		return nil, err
	}
	if owned {
		defer memzero.Zero(der)
	}

	info, err := inspectPKCS8(der)
	if err != nil {
		return nil, err
	}
	if !info.matches(c.curve) {
		return nil, fmt.Errorf("%w: private key is %s, want %s", ErrUnsupportedCurve, info, c.curve)
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	var priv *ecdh.PrivateKey
	switch k := key.(type) {
	case *ecdh.PrivateKey:
		priv = k
	case *ecdsa.PrivateKey:
		if priv, err = k.ECDH(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCurve, err)
		}
	default:
		return nil, fmt.Errorf("%w: private key type %T", ErrUnsupportedCurve, key)
	}
	if priv.Curve() != c.ec {
		return nil, fmt.Errorf("%w: private key is on %s, want %s", ErrUnsupportedCurve, curveLabel(priv.Curve()), c.curve)
	}
	return priv, nil
}

// ParsePublicKey decodes an X.509 SubjectPublicKeyInfo on the codec's curve.
func (c *KeyCodec) ParsePublicKey(encoded []byte) (*ecdh.PublicKey, error) {
	der, owned, err := decodeBlob(encoded)
	if err != nil {
		return nil, err
	}
	if owned {
		defer memzero.Zero(der)
	}

	info, err := inspectSPKI(der)
	if err != nil {
		return nil, err
	}
	if !info.matches(c.curve) {
		return nil, fmt.Errorf("%w: public key is %s, want %s", ErrUnsupportedCurve, info, c.curve)
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		// The structure was fine, so the point itself was rejected.
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	var pub *ecdh.PublicKey
	switch k := key.(type) {
	case *ecdh.PublicKey:
		pub = k
	case *ecdsa.PublicKey:
		if pub, err = k.ECDH(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
	default:
		return nil, fmt.Errorf("%w: public key type %T", ErrUnsupportedCurve, key)
	}
	if pub.Curve() != c.ec {
		return nil, fmt.Errorf("%w: public key is on %s, want %s", ErrUnsupportedCurve, curveLabel(pub.Curve()), c.curve)
	}
	return pub, nil
}

// EncodeKeyPair returns kp as PKCS#8 and SPKI DER. The private half is secret.
func (c *KeyCodec) EncodeKeyPair(kp KeyPair) (domain.EncodedKeyPair, error) {
	if kp.Private == nil || kp.Public == nil {
		return domain.EncodedKeyPair{}, fmt.Errorf("%w: incomplete key pair", ErrInvalidKey)
	}
	if kp.Private.Curve() != c.ec || kp.Public.Curve() != c.ec {
		return domain.EncodedKeyPair{}, fmt.Errorf("%w: key pair is not on %s", ErrUnsupportedCurve, c.curve)
	}
	priv, err := x509.MarshalPKCS8PrivateKey(kp.Private)
	if err != nil {
		return domain.EncodedKeyPair{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	pub, err := c.EncodePublicKey(kp.Public)
	if err != nil {
		memzero.Zero(priv)
		return domain.EncodedKeyPair{}, err
	}
	return domain.EncodedKeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// EncodePublicKey returns pub as SPKI DER.
func (c *KeyCodec) EncodePublicKey(pub *ecdh.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", ErrInvalidKey)
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return der, nil
}
