package keys

import (
	"keyagree/internal/crypto"
	"keyagree/internal/domain"
)

// Service generates key pairs on the codec's curve.
type Service struct {
	codec *crypto.KeyCodec
}

// New returns a key service backed by codec.
func New(codec *crypto.KeyCodec) *Service { return &Service{codec: codec} }

// GenerateKeyPair creates a fresh key pair and returns it encoded, together
// with the fingerprint of its public half. The private half is secret.
func (s *Service) GenerateKeyPair() (domain.EncodedKeyPair, domain.Fingerprint, error) {
	kp, err := s.codec.GenerateKeyPair()
	if err != nil {
		return domain.EncodedKeyPair{}, "", err
	}
	enc, err := s.codec.EncodeKeyPair(kp)
	if err != nil {
		return domain.EncodedKeyPair{}, "", err
	}
	return enc, crypto.Fingerprint(enc.PublicKey), nil
}

// FingerprintPublicKey parses an encoded public key and fingerprints its
// canonical DER form, so DER, PEM and base64 inputs agree.
func (s *Service) FingerprintPublicKey(encoded []byte) (domain.Fingerprint, error) {
	pub, err := s.codec.ParsePublicKey(encoded)
	if err != nil {
		return "", err
	}
	der, err := s.codec.EncodePublicKey(pub)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(der), nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
